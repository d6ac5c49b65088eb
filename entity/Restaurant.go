package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Slug        string `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`

	CityID    uint    `json:"cityId"`
	City      City    `json:"-"`
	CuisineID uint    `json:"cuisineId"`
	Cuisine   Cuisine `json:"-"`

	// no DB defaults on flags: a false value must survive Create as-is,
	// callers set them explicitly
	IsVegetarian      bool `json:"isVegetarian"`
	PickupAvailable   bool `json:"pickupAvailable"`
	DeliveryAvailable bool `json:"deliveryAvailable"`
	IsActive          bool `json:"isActive"`

	// owner (users.id); restaurants exist only after admin approval
	OwnerID uint `gorm:"index" json:"ownerId"`
	Owner   User `gorm:"foreignKey:OwnerID" json:"-"`

	Categories []Category        `json:"-"`
	MenuItems  []MenuItem        `json:"-"`
	Tables     []RestaurantTable `json:"-"`
	Orders     []Order           `json:"-"`
}
