package entity

import (
	"gorm.io/gorm"
)

type FavoriteRestaurant struct {
	gorm.Model
	UserID       uint       `gorm:"index:idx_user_favorite,unique" json:"userId"`
	User         User       `json:"-"`
	RestaurantID uint       `gorm:"index:idx_user_favorite,unique" json:"restaurantId"`
	Restaurant   Restaurant `json:"restaurant"`
}
