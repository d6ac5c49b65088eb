package entity

import (
	"gorm.io/gorm"
)

// Fulfillment channels.
const (
	ChannelPickup   = "pickup"
	ChannelDelivery = "delivery"
	ChannelDineIn   = "dine_in"
)

// Order statuses.
const (
	OrderStatusNew       = "new"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	gorm.Model
	Reference string  `gorm:"size:36;uniqueIndex" json:"reference"`
	Channel   string  `gorm:"not null" json:"channel"`
	Status    string  `gorm:"not null;default:new" json:"status"`
	Total     float64 `json:"total"` // computed server-side, never client input

	RestaurantID uint       `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	// dine_in only
	TableID *uint            `json:"tableId,omitempty"`
	Table   *RestaurantTable `json:"-"`

	// nil for guest orders
	UserID *uint `json:"userId,omitempty"`
	User   *User `json:"-"`

	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerAddress string `json:"customerAddress"`

	OrderItems []OrderItem `json:"-"`
}
