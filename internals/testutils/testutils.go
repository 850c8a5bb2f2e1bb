// Package testutils spins up the app against an in-memory SQLite
// database so handler tests run without a Postgres instance.
package testutils

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ncb_backend/internals/configs"
	"ncb_backend/internals/constants"
	database "ncb_backend/internals/databases"
	memberModel "ncb_backend/internals/features/members/model"
	authService "ncb_backend/internals/features/users/auth/service"
	userModel "ncb_backend/internals/features/users/user/model"
	routes "ncb_backend/internals/route"
)

// NewTestDB opens an in-memory database with the full schema applied.
// MaxOpenConns is pinned to 1 so every query sees the same :memory: DB.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

// NewTestConfig keeps uploads and cache inside the test's temp dir.
func NewTestConfig(t *testing.T) *configs.Config {
	t.Helper()
	return &configs.Config{
		SessionTTL:    24 * time.Hour,
		UploadDir:     t.TempDir(),
		MaxUploadSize: 5 * 1024 * 1024,
		AllowedExts:   []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".pdf"},
		CacheDir:      t.TempDir(),
		CacheTTL:      time.Minute,
	}
}

// NewTestApp builds a Fiber app with the real route tree mounted.
func NewTestApp(t *testing.T, db *gorm.DB, cfg *configs.Config) *fiber.App {
	t.Helper()
	app := fiber.New()
	routes.SetupRoutes(app, db, cfg)
	return app
}

// SeedAdmin creates an active staff account with its member profile and
// returns the user and the plaintext password.
func SeedAdmin(t *testing.T, db *gorm.DB, role string) (*userModel.UserModel, string) {
	t.Helper()

	const password = "correct horse battery staple"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	member := memberModel.MemberModel{
		FullName:   "Test Admin",
		Email:      "admin@example.org",
		JoinedDate: time.Now(),
		Status:     constants.StatusActive,
	}
	require.NoError(t, db.Create(&member).Error)

	user := userModel.UserModel{
		Username: "testadmin",
		Email:    "admin@example.org",
		Password: string(hash),
		Role:     role,
		MemberID: &member.MemberID,
		Status:   constants.StatusActive,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user, password
}

// SeedSession logs the user in directly at the database level and returns
// a bearer token.
func SeedSession(t *testing.T, db *gorm.DB, userID uint, ttl time.Duration) string {
	t.Helper()
	session, err := authService.CreateSession(db, userID, ttl)
	require.NoError(t, err)
	return session.Token
}
