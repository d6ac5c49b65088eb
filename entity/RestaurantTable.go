package entity

import (
	"gorm.io/gorm"
)

// RestaurantTable is a physical table. Code is an opaque random token baked
// into the QR on the table; it works as a capability, never a sequential id.
type RestaurantTable struct {
	gorm.Model
	RestaurantID uint       `gorm:"index:idx_table_number,unique" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	TableNumber int    `gorm:"index:idx_table_number,unique" json:"tableNumber"`
	Code        string `gorm:"size:64;index" json:"-"`
	IsActive    bool   `json:"isActive"`
}
