package services

import (
	"testing"
	"time"

	"backend/entity"
	"backend/repository"
	"backend/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register("carol", "Carol@Example.com", "hunter2")
	require.NoError(t, err)
	require.Equal(t, entity.RoleCustomer, user.Role)
	require.Equal(t, "carol@example.com", user.Email)
	require.NotEqual(t, "hunter2", user.Password)

	token, logged, err := svc.Login("carol", "hunter2")
	require.NoError(t, err)
	require.Equal(t, user.ID, logged.ID)

	claims, err := utils.ParseToken(token, "test-secret")
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, entity.RoleCustomer, claims.Role)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register("carol", "", "hunter2")
	require.NoError(t, err)

	_, err = svc.Register("carol", "", "other")
	require.True(t, IsValidation(err))
}

func TestLoginBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register("carol", "", "hunter2")
	require.NoError(t, err)

	_, _, err = svc.Login("carol", "wrong")
	require.True(t, IsValidation(err))

	_, _, err = svc.Login("nobody", "hunter2")
	require.True(t, IsValidation(err))
}

func TestLoginSurfacesDatabaseError(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	// a broken database is an internal error, not bad credentials
	require.NoError(t, db.Migrator().DropTable(&entity.User{}))

	_, _, err := svc.Login("carol", "hunter2")
	require.Error(t, err)
	require.False(t, IsValidation(err))
}
