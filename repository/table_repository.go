package repository

import (
	"github.com/pkmbilal/QR-Food-Menu-sub000/entity"

	"gorm.io/gorm"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) ListForRestaurant(restID uint) ([]entity.RestaurantTable, error) {
	var out []entity.RestaurantTable
	err := r.DB.Where("restaurant_id = ?", restID).
		Order("table_number").Find(&out).Error
	return out, err
}

// ExistingNumbers returns which table numbers a restaurant already has, so
// generation can fill the gaps without touching existing rows.
func (r *TableRepository) ExistingNumbers(restID uint) (map[int]bool, error) {
	var numbers []int
	err := r.DB.Model(&entity.RestaurantTable{}).
		Where("restaurant_id = ?", restID).
		Pluck("table_number", &numbers).Error
	if err != nil {
		return nil, err
	}
	out := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		out[n] = true
	}
	return out, nil
}

func (r *TableRepository) Create(tx *gorm.DB, t *entity.RestaurantTable) error {
	return tx.Create(t).Error
}

// FindActiveByCode resolves a table code scoped to one restaurant. A code
// that exists globally but under another restaurant does not resolve.
func (r *TableRepository) FindActiveByCode(restID uint, code string) (*entity.RestaurantTable, error) {
	var t entity.RestaurantTable
	err := r.DB.Where("restaurant_id = ? AND code = ? AND is_active = ?", restID, code, true).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) FindForRestaurant(tableID, restID uint) (*entity.RestaurantTable, error) {
	var t entity.RestaurantTable
	if err := r.DB.Where("id = ? AND restaurant_id = ?", tableID, restID).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) SetActive(tableID uint, active bool) error {
	return r.DB.Model(&entity.RestaurantTable{}).Where("id = ?", tableID).
		Update("is_active", active).Error
}
