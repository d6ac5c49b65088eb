package services

import (
	"testing"

	"github.com/pkmbilal/QR-Food-Menu-sub000/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder_TotalFromServerPrices(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)

	rest := seedRestaurant(t, db, "pizza-place", true, false)
	itemA := seedMenuItem(t, db, rest, "Margherita", 12.00)

	out, err := svc.Create(0, &CreateOrderReq{
		RestaurantSlug: "pizza-place",
		Channel:        entity.ChannelPickup,
		Items:          []OrderItemIn{{ID: itemA.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, 24.00, out.Total)
	assert.NotEmpty(t, out.Reference)
	assert.Nil(t, out.TableNumber)

	var stored entity.Order
	require.NoError(t, db.First(&stored, out.OrderID).Error)
	assert.Equal(t, 24.00, stored.Total)
	assert.Equal(t, entity.OrderStatusNew, stored.Status)
	assert.Nil(t, stored.UserID) // guest order

	var items []entity.OrderItem
	require.NoError(t, db.Where("order_id = ?", out.OrderID).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, "Margherita", items[0].ItemName)
	assert.Equal(t, 12.00, items[0].UnitPrice)
	assert.Equal(t, 2, items[0].Qty)
}

func TestCreateOrder_QuantityDefaultsToOne(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)

	rest := seedRestaurant(t, db, "kebab-house", true, true)
	item := seedMenuItem(t, db, rest, "Adana", 9.50)

	out, err := svc.Create(0, &CreateOrderReq{
		RestaurantSlug: "kebab-house",
		Channel:        entity.ChannelDelivery,
		Items:          []OrderItemIn{{ID: item.ID}}, // no quantity
		Customer:       CustomerIn{Name: "Ada", Address: "Somewhere 1"},
	})
	require.NoError(t, err)
	assert.Equal(t, 9.50, out.Total)
}

func TestCreateOrder_RestaurantNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)

	_, err := svc.Create(0, &CreateOrderReq{
		RestaurantSlug: "nope",
		Channel:        entity.ChannelPickup,
		Items:          []OrderItemIn{{ID: 1}},
	})
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestCreateOrder_DisabledChannelRejectedWithoutWrite(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)

	rest := seedRestaurant(t, db, "dine-only", false, false)
	item := seedMenuItem(t, db, rest, "Soup", 4.00)

	_, err := svc.Create(0, &CreateOrderReq{
		RestaurantSlug: "dine-only",
		Channel:        entity.ChannelPickup,
		Items:          []OrderItemIn{{ID: item.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrChannelDisabled)

	var count int64
	db.Model(&entity.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateOrder_DineInRequiresValidTableCode(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)

	rest := seedRestaurant(t, db, "bistro", true, false)
	other := seedRestaurant(t, db, "other-bistro", true, false)
	item := seedMenuItem(t, db, rest, "Pasta", 11.00)

	seedTable(t, db, rest, 1, "goodcode", true)
	seedTable(t, db, rest, 2, "inactivecode", false)
	seedTable(t, db, other, 1, "foreigncode", true)

	// missing code
	_, err := svc.Create(0, &CreateOrderReq{
		RestaurantSlug: "bistro",
		Channel:        entity.ChannelDineIn,
		Items:          []OrderItemIn{{ID: item.ID}},
	})
	assert.ErrorIs(t, err, ErrTableCodeMissing)

	// code exists globally but belongs to another restaurant
	_, err = svc.Create(0, &CreateOrderReq{
		RestaurantSlug: "bistro",
		Channel:        entity.ChannelDineIn,
		TableCode:      "foreigncode",
		Items:          []OrderItemIn{{ID: item.ID}},
	})
	assert.ErrorIs(t, err, ErrInvalidTableCode)

	// inactive table
	_, err = svc.Create(0, &CreateOrderReq{
		RestaurantSlug: "bistro",
		Channel:        entity.ChannelDineIn,
		TableCode:      "inactivecode",
		Items:          []OrderItemIn{{ID: item.ID}},
	})
	assert.ErrorIs(t, err, ErrInvalidTableCode)

	var count int64
	db.Model(&entity.Order{}).Count(&count)
	assert.Zero(t, count)

	// valid code resolves the table number onto the order
	out, err := svc.Create(0, &CreateOrderReq{
		RestaurantSlug: "bistro",
		Channel:        entity.ChannelDineIn,
		TableCode:      "goodcode",
		Items:          []OrderItemIn{{ID: item.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	require.NotNil(t, out.TableNumber)
	assert.Equal(t, 1, *out.TableNumber)

	var stored entity.Order
	require.NoError(t, db.First(&stored, out.OrderID).Error)
	require.NotNil(t, stored.TableID)
}

func TestCreateOrder_EmptyItemsRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)

	seedRestaurant(t, db, "cafe", true, false)

	_, err := svc.Create(0, &CreateOrderReq{
		RestaurantSlug: "cafe",
		Channel:        entity.ChannelPickup,
	})
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestCreateOrder_UnavailableItemNamedInError(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)

	rest := seedRestaurant(t, db, "grill", true, false)
	good := seedMenuItem(t, db, rest, "Wings", 8.00)
	soldOut := seedMenuItem(t, db, rest, "Ribs", 15.00)
	require.NoError(t, db.Model(soldOut).Update("is_sold_out", true).Error)

	_, err := svc.Create(0, &CreateOrderReq{
		RestaurantSlug: "grill",
		Channel:        entity.ChannelPickup,
		Items: []OrderItemIn{
			{ID: good.ID, Quantity: 1},
			{ID: soldOut.ID, Quantity: 1},
		},
	})
	require.ErrorIs(t, err, ErrItemUnavailable)
	assert.Contains(t, err.Error(), "Ribs")

	// whole order rejected, including the valid line
	var count int64
	db.Model(&entity.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateOrder_ItemFromOtherRestaurantRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)

	seedRestaurant(t, db, "mine", true, false)
	other := seedRestaurant(t, db, "theirs", true, false)
	foreign := seedMenuItem(t, db, other, "Foreign Dish", 7.00)

	_, err := svc.Create(0, &CreateOrderReq{
		RestaurantSlug: "mine",
		Channel:        entity.ChannelPickup,
		Items:          []OrderItemIn{{ID: foreign.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrItemUnavailable)
}

func TestCreateOrder_AttachesAuthenticatedUser(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)

	rest := seedRestaurant(t, db, "diner", true, false)
	item := seedMenuItem(t, db, rest, "Burger", 10.00)
	user := seedUser(t, db, "customer@example.com", entity.RoleCustomer)

	out, err := svc.Create(user.ID, &CreateOrderReq{
		RestaurantSlug: "diner",
		Channel:        entity.ChannelPickup,
		Items:          []OrderItemIn{{ID: item.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	var stored entity.Order
	require.NoError(t, db.First(&stored, out.OrderID).Error)
	require.NotNil(t, stored.UserID)
	assert.Equal(t, user.ID, *stored.UserID)
}

func TestUpdateStatus_Transitions(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)

	rest := seedRestaurant(t, db, "status-place", true, false)
	item := seedMenuItem(t, db, rest, "Toast", 3.00)

	out, err := svc.Create(0, &CreateOrderReq{
		RestaurantSlug: "status-place",
		Channel:        entity.ChannelPickup,
		Items:          []OrderItemIn{{ID: item.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	ownerID := rest.OwnerID

	// new -> completed skips the flow
	err = svc.UpdateStatus(ownerID, out.OrderID, entity.OrderStatusCompleted)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, svc.UpdateStatus(ownerID, out.OrderID, entity.OrderStatusPreparing))
	require.NoError(t, svc.UpdateStatus(ownerID, out.OrderID, entity.OrderStatusReady))
	require.NoError(t, svc.UpdateStatus(ownerID, out.OrderID, entity.OrderStatusCompleted))

	// terminal
	err = svc.UpdateStatus(ownerID, out.OrderID, entity.OrderStatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// someone else's owner account cannot touch the order
	stranger := seedUser(t, db, "stranger@example.com", entity.RoleOwner)
	err = svc.UpdateStatus(stranger.ID, out.OrderID, entity.OrderStatusPreparing)
	assert.Error(t, err)
}

func TestListForRestaurant_ScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)

	rest := seedRestaurant(t, db, "list-place", true, false)
	item := seedMenuItem(t, db, rest, "Salad", 6.00)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(0, &CreateOrderReq{
			RestaurantSlug: "list-place",
			Channel:        entity.ChannelPickup,
			Items:          []OrderItemIn{{ID: item.ID, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	out, err := svc.ListForRestaurant(rest.OwnerID, "", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.Total)
	assert.Len(t, out.Items, 3)

	filtered, err := svc.ListForRestaurant(rest.OwnerID, entity.OrderStatusCancelled, 1, 10)
	require.NoError(t, err)
	assert.Zero(t, filtered.Total)
}
