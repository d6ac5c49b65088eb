package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`

	IsAvailable  bool `json:"isAvailable"`
	IsSoldOut    bool `json:"isSoldOut"`
	IsVegetarian bool `json:"isVegetarian"`

	CategoryID uint     `gorm:"index" json:"categoryId"`
	Category   Category `json:"-"`

	RestaurantID uint       `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	OrderItems []OrderItem `json:"-"`
}
