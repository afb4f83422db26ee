package repository

import (
	"context"
	"testing"

	"salonbooking/internal/database"
	"salonbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	// one shared in-memory database for every pooled connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models...))
	return db
}

func TestUserRepository_Create_DuplicateEmailRejected(t *testing.T) {
	db := newTestDB(t, &domain.User{})
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &domain.User{
		Name:         "Maria",
		Email:        "dup@test.com",
		PasswordHash: "x",
		Role:         domain.RoleClient,
	}
	require.NoError(t, repo.Create(ctx, first))

	// the unique index on users.email backstops the pre-insert
	// existence check in registration
	second := &domain.User{
		Name:         "Maria Again",
		Email:        "dup@test.com",
		PasswordHash: "y",
		Role:         domain.RoleClient,
	}
	err := repo.Create(ctx, second)
	require.Error(t, err)

	var cnt int64
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM users WHERE email = ?", "dup@test.com").Scan(&cnt).Error)
	assert.Equal(t, int64(1), cnt)
}

func TestUserRepository_Create_EmailCaseCollision(t *testing.T) {
	db := newTestDB(t, &domain.User{})
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{
		Name:         "Maria",
		Email:        "maria@test.com",
		PasswordHash: "x",
		Role:         domain.RoleClient,
	}))

	// emails are lowercased on write, so a case variant hits the
	// same index entry
	err := repo.Create(ctx, &domain.User{
		Name:         "Shouty Maria",
		Email:        "MARIA@Test.Com",
		PasswordHash: "y",
		Role:         domain.RoleClient,
	})
	assert.Error(t, err)
}
