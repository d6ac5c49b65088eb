package repository

import (
	"github.com/pkmbilal/QR-Food-Menu-sub000/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// ---------------- Categories ----------------

func (r *MenuRepository) ListCategories(restID uint) ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Where("restaurant_id = ?", restID).
		Order("sort_order, id").Find(&out).Error
	return out, err
}

func (r *MenuRepository) CreateCategory(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *MenuRepository) FindCategoryForRestaurant(catID, restID uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.Where("id = ? AND restaurant_id = ?", catID, restID).First(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *MenuRepository) UpdateCategory(catID uint, updates map[string]any) error {
	return r.DB.Model(&entity.Category{}).Where("id = ?", catID).Updates(updates).Error
}

func (r *MenuRepository) DeleteCategory(catID uint) error {
	return r.DB.Delete(&entity.Category{}, catID).Error
}

// ---------------- Menu items ----------------

// ListItems returns all of a restaurant's items; availableOnly trims the
// public menu to what a guest can actually order from.
func (r *MenuRepository) ListItems(restID uint, availableOnly bool) ([]entity.MenuItem, error) {
	db := r.DB.Where("restaurant_id = ?", restID)
	if availableOnly {
		db = db.Where("is_available = ?", true)
	}
	var out []entity.MenuItem
	err := db.Order("category_id, id").Find(&out).Error
	return out, err
}

func (r *MenuRepository) CreateItem(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) FindItemForRestaurant(itemID, restID uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.Where("id = ? AND restaurant_id = ?", itemID, restID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) UpdateItem(itemID uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", itemID).Updates(updates).Error
}

func (r *MenuRepository) DeleteItem(itemID uint) error {
	return r.DB.Delete(&entity.MenuItem{}, itemID).Error
}

// FindItemsByIDs bulk-fetches the authoritative rows order intake validates
// against. Missing ids simply come back absent.
func (r *MenuRepository) FindItemsByIDs(ids []uint) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	err := r.DB.Where("id IN ?", ids).Find(&out).Error
	return out, err
}
