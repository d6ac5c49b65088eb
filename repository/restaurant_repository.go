package repository

import (
	"strings"

	"github.com/pkmbilal/QR-Food-Menu-sub000/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// RestaurantFilter is the discovery query: every field is optional.
type RestaurantFilter struct {
	City       string
	Cuisine    string
	Query      string
	Vegetarian bool
}

// ListActive builds the filtered discovery listing over active restaurants.
func (r *RestaurantRepository) ListActive(f RestaurantFilter) ([]entity.Restaurant, error) {
	db := r.DB.Model(&entity.Restaurant{}).
		Preload("City").Preload("Cuisine").
		Where("is_active = ?", true)

	if f.City != "" {
		db = db.Joins("JOIN cities ON cities.id = restaurants.city_id").
			Where("cities.name = ?", f.City)
	}
	if f.Cuisine != "" {
		db = db.Joins("JOIN cuisines ON cuisines.id = restaurants.cuisine_id").
			Where("cuisines.name = ?", f.Cuisine)
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		db = db.Where("LOWER(restaurants.name) LIKE ? OR LOWER(restaurants.description) LIKE ?", like, like)
	}
	if f.Vegetarian {
		db = db.Where("restaurants.is_vegetarian = ?", true)
	}

	var out []entity.Restaurant
	err := db.Order("restaurants.name").Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) FindActiveBySlug(slug string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Where("slug = ? AND is_active = ?", slug, true).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindByOwner(ownerID uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Where("owner_id = ?", ownerID).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) IsOwnedBy(restID, userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).
		Where("id = ? AND owner_id = ?", restID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *RestaurantRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Updates(updates).Error
}

func (r *RestaurantRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// ListAll is the admin view, inactive restaurants included.
func (r *RestaurantRepository) ListAll() ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Preload("City").Preload("Cuisine").Order("id DESC").Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) SetActive(id uint, active bool) error {
	return r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).
		Update("is_active", active).Error
}
