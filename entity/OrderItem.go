package entity

import (
	"gorm.io/gorm"
)

// OrderItem snapshots name and price at order time, so later menu edits do
// not rewrite order history.
type OrderItem struct {
	gorm.Model
	ItemName  string  `json:"itemName"`
	UnitPrice float64 `json:"unitPrice"`
	Qty       int     `json:"qty"`
	Total     float64 `json:"total"`

	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
}
