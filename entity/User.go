package entity

import (
	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleOwner    = "owner"
	RoleAdmin    = "admin"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Role        string `gorm:"not null;default:customer" json:"role"`

	// preload only when the endpoint needs them
	RestaurantsOwned   []Restaurant         `gorm:"foreignKey:OwnerID" json:"-"`
	Orders             []Order              `json:"-"`
	RestaurantRequests []RestaurantRequest  `json:"-"`
	Favorites          []FavoriteRestaurant `json:"-"`
}
