package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name      string `gorm:"not null" json:"name"`
	SortOrder int    `json:"sortOrder"`

	RestaurantID uint       `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	MenuItems []MenuItem `json:"-"`
}
