package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/utils"
)

const testSecret = "test-secret"

func guardedRouter(t *testing.T, reached *bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	issuer, err := utils.NewTokenIssuer(testSecret, time.Hour)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/protected", AuthMiddleware(issuer), func(c *gin.Context) {
		*reached = true
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c)})
	})
	return r
}

func expiredToken(t *testing.T) string {
	t.Helper()
	claims := utils.Claims{
		UserID: 7,
		Email:  "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	issuer, err := utils.NewTokenIssuer(testSecret, time.Hour)
	require.NoError(t, err)
	valid, err := issuer.Issue(7, "a@x.com")
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		wantMsg string
	}{
		{"no header", "", "No token provided"},
		{"wrong scheme", "Basic " + valid, "Invalid token format"},
		{"bare token", valid, "Invalid token format"},
		{"tampered", "Bearer " + valid + "x", "Invalid token"},
		{"garbage", "Bearer not.a.token", "Invalid token"},
		{"expired", "Bearer " + expiredToken(t), "Token expired"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached := false
			r := guardedRouter(t, &reached)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantMsg)
			assert.False(t, reached, "downstream handler must not run")
		})
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	reached := false
	r := guardedRouter(t, &reached)

	issuer, err := utils.NewTokenIssuer(testSecret, time.Hour)
	require.NoError(t, err)
	token, err := issuer.Issue(7, "a@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, reached)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
}
