package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// RestaurantRequest is a customer's application to open a restaurant.
// No Restaurant row exists until an admin approves the request.
type RestaurantRequest struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`

	CityID    uint    `json:"cityId"`
	City      City    `json:"-"`
	CuisineID uint    `json:"cuisineId"`
	Cuisine   Cuisine `json:"-"`

	IsVegetarian      bool `json:"isVegetarian"`
	PickupAvailable   bool `json:"pickupAvailable"`
	DeliveryAvailable bool `json:"deliveryAvailable"`

	UserID uint `gorm:"index" json:"userId"` // applicant, future owner
	User   User `json:"-"`

	Status string `gorm:"not null;default:pending" json:"status"`

	ReviewedByID    *uint      `json:"reviewedById,omitempty"`
	ReviewedAt      *time.Time `json:"reviewedAt,omitempty"`
	RejectionReason *string    `json:"rejectionReason,omitempty"`
}
