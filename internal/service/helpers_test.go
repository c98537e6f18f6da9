package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repository.NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}

func registerUser(t *testing.T, db *gorm.DB, name, email string) *model.User {
	t.Helper()
	auth := NewAuthService(repository.NewUserRepository(db), OpaqueTokenIssuer{})
	user, err := auth.Register(context.Background(), name, email, "secret")
	require.NoError(t, err)
	return user
}
