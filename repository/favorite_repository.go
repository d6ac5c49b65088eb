package repository

import (
	"github.com/pkmbilal/QR-Food-Menu-sub000/entity"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	DB *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{DB: db}
}

func (r *FavoriteRepository) ListForUser(userID uint) ([]entity.FavoriteRestaurant, error) {
	var out []entity.FavoriteRestaurant
	err := r.DB.Preload("Restaurant").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&out).Error
	return out, err
}

func (r *FavoriteRepository) Add(userID, restID uint) error {
	fav := entity.FavoriteRestaurant{UserID: userID, RestaurantID: restID}
	// unique (user, restaurant) pair; re-adding is a no-op
	return r.DB.Where(&entity.FavoriteRestaurant{UserID: userID, RestaurantID: restID}).
		FirstOrCreate(&fav).Error
}

func (r *FavoriteRepository) Remove(userID, restID uint) error {
	// hard delete: a soft-deleted row would still occupy the unique pair
	// index and block re-favoriting
	return r.DB.Unscoped().
		Where("user_id = ? AND restaurant_id = ?", userID, restID).
		Delete(&entity.FavoriteRestaurant{}).Error
}
