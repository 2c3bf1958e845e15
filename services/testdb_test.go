package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/config"
	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/models"
	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/utils"
)

// newTestDB opens an in-memory sqlite store with the production schema.
// TranslateError matches the postgres setup so duplicate-key handling behaves
// the same under test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func newTestIssuer(t *testing.T) *utils.TokenIssuer {
	t.Helper()
	issuer, err := utils.NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	return issuer
}

func seedUser(t *testing.T, db *gorm.DB, gmail, phone string) *models.User {
	t.Helper()
	hash, err := utils.HashPassword("secret")
	require.NoError(t, err)
	user := &models.User{
		Name:     "Test User",
		Gmail:    gmail,
		Phone:    phone,
		Age:      30,
		Gender:   "f",
		Weight:   60,
		Height:   165,
		Goal:     "lose",
		Password: hash,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
