package services

import (
	"testing"
	"time"

	"github.com/pkmbilal/QR-Food-Menu-sub000/entity"
	"github.com/pkmbilal/QR-Food-Menu-sub000/repository"
	"github.com/pkmbilal/QR-Food-Menu-sub000/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register("  Ada@Example.com ", "hunter22", "Ada", "L", "555")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, entity.RoleCustomer, user.Role)
	assert.NotEqual(t, "hunter22", user.Password) // stored hashed

	// duplicate email
	_, err = svc.Register("ada@example.com", "other", "A", "B", "")
	assert.Error(t, err)

	token, logged, err := svc.Login("ADA@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	claims, err := utils.ParseToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, entity.RoleCustomer, claims.Role)

	_, _, err = svc.Login("ada@example.com", "wrong")
	assert.Error(t, err)
	_, _, err = svc.Login("nobody@example.com", "hunter22")
	assert.Error(t, err)
}

func TestParseToken_RejectsWrongSecret(t *testing.T) {
	token, err := utils.GenerateToken(1, entity.RoleOwner, "secret-a", time.Hour)
	require.NoError(t, err)

	_, err = utils.ParseToken(token, "secret-b")
	assert.Error(t, err)
}

func TestFavorites_AddListRemove(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFavoriteService(
		repository.NewFavoriteRepository(db),
		repository.NewRestaurantRepository(db),
	)

	user := seedUser(t, db, "fav@example.com", entity.RoleCustomer)
	rest := seedRestaurant(t, db, "fav-place", true, false)

	require.NoError(t, svc.Add(user.ID, rest.ID))
	// adding twice keeps one row
	require.NoError(t, svc.Add(user.ID, rest.ID))

	items, err := svc.List(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, rest.ID, items[0].Restaurant.ID)

	assert.ErrorIs(t, svc.Add(user.ID, 9999), ErrRestaurantNotFound)

	require.NoError(t, svc.Remove(user.ID, rest.ID))
	items, err = svc.List(user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
