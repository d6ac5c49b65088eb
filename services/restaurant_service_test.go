package services

import (
	"testing"

	"github.com/pkmbilal/QR-Food-Menu-sub000/entity"
	"github.com/pkmbilal/QR-Food-Menu-sub000/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRestaurantService(db *gorm.DB) *RestaurantService {
	return NewRestaurantService(
		repository.NewRestaurantRepository(db),
		repository.NewMenuRepository(db),
		repository.NewTableRepository(db),
	)
}

func TestDiscover_Filters(t *testing.T) {
	db := setupTestDB(t)
	svc := newRestaurantService(db)

	istanbul := entity.City{Name: "Istanbul"}
	ankara := entity.City{Name: "Ankara"}
	require.NoError(t, db.Create(&istanbul).Error)
	require.NoError(t, db.Create(&ankara).Error)
	pizza := entity.Cuisine{Name: "Pizza"}
	kebab := entity.Cuisine{Name: "Kebab"}
	require.NoError(t, db.Create(&pizza).Error)
	require.NoError(t, db.Create(&kebab).Error)

	a := seedRestaurant(t, db, "napoli", true, false)
	require.NoError(t, db.Model(a).Updates(map[string]any{
		"name": "Napoli Pizzeria", "city_id": istanbul.ID, "cuisine_id": pizza.ID,
	}).Error)

	b := seedRestaurant(t, db, "green-garden", true, false)
	require.NoError(t, db.Model(b).Updates(map[string]any{
		"name": "Green Garden", "city_id": ankara.ID, "cuisine_id": kebab.ID, "is_vegetarian": true,
	}).Error)

	c := seedRestaurant(t, db, "hidden", true, false)
	require.NoError(t, db.Model(c).Update("is_active", false).Error)

	all, err := svc.Discover(repository.RestaurantFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2) // inactive never listed

	byCity, err := svc.Discover(repository.RestaurantFilter{City: "Istanbul"})
	require.NoError(t, err)
	require.Len(t, byCity, 1)
	assert.Equal(t, "napoli", byCity[0].Slug)

	byCuisine, err := svc.Discover(repository.RestaurantFilter{Cuisine: "Kebab"})
	require.NoError(t, err)
	require.Len(t, byCuisine, 1)
	assert.Equal(t, "green-garden", byCuisine[0].Slug)

	veg, err := svc.Discover(repository.RestaurantFilter{Vegetarian: true})
	require.NoError(t, err)
	require.Len(t, veg, 1)
	assert.Equal(t, "green-garden", veg[0].Slug)

	search, err := svc.Discover(repository.RestaurantFilter{Query: "pizz"})
	require.NoError(t, err)
	require.Len(t, search, 1)
	assert.Equal(t, "napoli", search[0].Slug)

	none, err := svc.Discover(repository.RestaurantFilter{City: "Istanbul", Cuisine: "Kebab"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPublicMenu_HidesUnavailableItems(t *testing.T) {
	db := setupTestDB(t)
	svc := newRestaurantService(db)

	rest := seedRestaurant(t, db, "menu-place", true, false)
	visible := seedMenuItem(t, db, rest, "Visible Dish", 5.00)
	hidden := seedMenuItem(t, db, rest, "Hidden Dish", 6.00)
	require.NoError(t, db.Model(hidden).Update("is_available", false).Error)

	view, err := svc.PublicMenu("menu-place", "")
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, visible.ID, view.Items[0].ID)
	assert.Nil(t, view.TableNumber)
}

func TestPublicMenu_EchoesTableNumber(t *testing.T) {
	db := setupTestDB(t)
	svc := newRestaurantService(db)

	rest := seedRestaurant(t, db, "qr-place", true, false)
	seedMenuItem(t, db, rest, "Dish", 5.00)
	seedTable(t, db, rest, 4, "scanme", true)

	view, err := svc.PublicMenu("qr-place", "scanme")
	require.NoError(t, err)
	require.NotNil(t, view.TableNumber)
	assert.Equal(t, 4, *view.TableNumber)

	// bad code never fails the menu load
	view, err = svc.PublicMenu("qr-place", "wrong")
	require.NoError(t, err)
	assert.Nil(t, view.TableNumber)
}

func TestPublicMenu_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newRestaurantService(db)

	_, err := svc.PublicMenu("missing", "")
	assert.ErrorIs(t, err, ErrRestaurantNotFound)

	inactive := seedRestaurant(t, db, "gone", true, false)
	require.NoError(t, db.Model(inactive).Update("is_active", false).Error)
	_, err = svc.PublicMenu("gone", "")
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestOwnerUpdate_IgnoresProtectedFields(t *testing.T) {
	db := setupTestDB(t)
	svc := newRestaurantService(db)

	rest := seedRestaurant(t, db, "locked-place", false, false)

	updated, err := svc.OwnerUpdate(rest.OwnerID, map[string]any{
		"pickup_available": true,
		"slug":             "hacked",
		"owner_id":         999,
		"is_active":        false,
	})
	require.NoError(t, err)
	assert.True(t, updated.PickupAvailable)
	assert.Equal(t, "locked-place", updated.Slug)
	assert.Equal(t, rest.OwnerID, updated.OwnerID)
	assert.True(t, updated.IsActive)
}
