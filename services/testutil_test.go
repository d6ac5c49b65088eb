package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/pkmbilal/QR-Food-Menu-sub000/entity"
	"github.com/pkmbilal/QR-Food-Menu-sub000/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// setupTestDB opens a fresh in-memory database per test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.City{}, &entity.Cuisine{},
		&entity.Restaurant{}, &entity.RestaurantTable{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.RestaurantRequest{},
		&entity.FavoriteRestaurant{},
	))
	return db
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewMenuRepository(db),
		repository.NewTableRepository(db),
	)
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", Role: role}
	require.NoError(t, db.Create(u).Error)
	return u
}

// seedRestaurant creates an active restaurant with its own owner account.
func seedRestaurant(t *testing.T, db *gorm.DB, slug string, pickup, delivery bool) *entity.Restaurant {
	t.Helper()
	owner := seedUser(t, db, slug+"-owner@example.com", entity.RoleOwner)
	r := &entity.Restaurant{
		Slug:              slug,
		Name:              slug,
		PickupAvailable:   pickup,
		DeliveryAvailable: delivery,
		IsActive:          true,
		OwnerID:           owner.ID,
	}
	require.NoError(t, db.Create(r).Error)
	return r
}

func seedMenuItem(t *testing.T, db *gorm.DB, rest *entity.Restaurant, name string, price float64) *entity.MenuItem {
	t.Helper()
	cat := &entity.Category{Name: "Mains", RestaurantID: rest.ID}
	require.NoError(t, db.Create(cat).Error)
	m := &entity.MenuItem{
		Name:         name,
		Price:        price,
		CategoryID:   cat.ID,
		RestaurantID: rest.ID,
		IsAvailable:  true,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func seedTable(t *testing.T, db *gorm.DB, rest *entity.Restaurant, number int, code string, active bool) *entity.RestaurantTable {
	t.Helper()
	tbl := &entity.RestaurantTable{
		RestaurantID: rest.ID,
		TableNumber:  number,
		Code:         code,
		IsActive:     active,
	}
	require.NoError(t, db.Create(tbl).Error)
	return tbl
}
