package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/config"
	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/utils"
)

func newTestServer(t *testing.T) (*gin.Engine, *utils.TokenIssuer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	issuer, err := utils.NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	return SetupRouter(db, issuer), issuer
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const registerBody = `{"name":"A","phone":"1234567890","gmail":"a@x.com","age":30,"gender":"f","weight":60,"height":165,"goal":"lose","password":"secret"}`

func TestRegisterLoginEndToEnd(t *testing.T) {
	r, issuer := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var reg struct {
		Success  bool   `json:"success"`
		AgeGroup string `json:"ageGroup"`
		Token    string `json:"token"`
		User     struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))
	assert.True(t, reg.Success)
	assert.Equal(t, "adult", reg.AgeGroup)
	require.NotEmpty(t, reg.Token)
	assert.NotContains(t, w.Body.String(), "password")

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", `{"identifier":"a@x.com","password":"secret"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	claims, err := issuer.Verify(login.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, claims.UserID)

	// The issued token opens protected routes.
	w = doJSON(t, r, http.MethodGet, "/api/users/profile", login.Token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"gmail":"a@x.com"`)
	assert.Contains(t, w.Body.String(), `"bmi":22.04`)
}

func TestRegister_Validation(t *testing.T) {
	r, _ := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing fields", `{"gmail":"a@x.com"}`},
		{"bad email", strings.Replace(registerBody, "a@x.com", "not-an-email", 1)},
		{"short phone", strings.Replace(registerBody, "1234567890", "12345", 1)},
		{"alpha phone", strings.Replace(registerBody, "1234567890", "12345abcde", 1)},
		{"age too low", strings.Replace(registerBody, `"age":30`, `"age":12`, 1)},
		{"age too high", strings.Replace(registerBody, `"age":30`, `"age":130`, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	// No partial writes: a valid registration with the same email still works.
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", registerBody)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRegister_Conflict(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, w.Code)

	sameEmail := strings.Replace(registerBody, "1234567890", "0987654321", 1)
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", sameEmail)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")

	samePhone := strings.Replace(registerBody, "a@x.com", "b@x.com", 1)
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", samePhone)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin_FailureResponsesIdentical(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, w.Code)

	wrongPassword := doJSON(t, r, http.MethodPost, "/api/auth/login", "", `{"identifier":"a@x.com","password":"wrong"}`)
	unknownUser := doJSON(t, r, http.MethodPost, "/api/auth/login", "", `{"identifier":"nobody@x.com","password":"secret"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, unknownUser.Code, wrongPassword.Code)
	assert.Equal(t, unknownUser.Body.String(), wrongPassword.Body.String())
}

func TestLogin_MissingFields(t *testing.T) {
	r, _ := newTestServer(t)

	for _, body := range []string{`{}`, `{"identifier":"a@x.com"}`, `{"password":"secret"}`} {
		w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	r, _ := newTestServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/users/profile"},
		{http.MethodGet, "/api/diet/summary/daily"},
		{http.MethodGet, "/api/fitness/workouts"},
		{http.MethodGet, "/api/progress/summary"},
		{http.MethodGet, "/api/tips"},
		{http.MethodGet, "/api/auth/check"},
	}
	for _, p := range paths {
		w := doJSON(t, r, p.method, p.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, p.path)
		assert.Contains(t, w.Body.String(), "No token provided", p.path)
	}
}

func TestDanglingToken_GetsGeneric401(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, w.Code)
	var reg struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))

	w = doJSON(t, r, http.MethodDelete, "/api/users/profile", reg.Token, "")
	require.Equal(t, http.StatusOK, w.Code)

	// The token still verifies but its subject is gone: 401, not 404.
	w = doJSON(t, r, http.MethodGet, "/api/users/profile", reg.Token, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Please authenticate")
}

func TestHealth_Unauthenticated(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthCheck(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, w.Code)
	var reg struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))

	w = doJSON(t, r, http.MethodGet, "/api/auth/check", reg.Token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":true`)
}
