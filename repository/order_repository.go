package repository

import (
	"time"

	"github.com/pkmbilal/QR-Food-Menu-sub000/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForRestaurant(restID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND restaurant_id = ?", orderID, restID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Model(&entity.OrderItem{}).
		Select("id, item_name, unit_price, qty, total, menu_item_id, order_id").
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}

// GET /profile/orders
type OrderSummary struct {
	ID           uint      `json:"id"`
	Reference    string    `json:"reference"`
	RestaurantID uint      `json:"restaurantId"`
	Channel      string    `json:"channel"`
	Status       string    `json:"status"`
	Total        float64   `json:"total"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, reference, restaurant_id, channel, status, total, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// GET /owner/orders
type OwnerOrderSummary struct {
	ID           uint      `json:"id"`
	Reference    string    `json:"reference"`
	Channel      string    `json:"channel"`
	Status       string    `json:"status"`
	Total        float64   `json:"total"`
	TableNumber  *int      `json:"tableNumber,omitempty"`
	CustomerName string    `json:"customerName"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForRestaurant(restID uint, status string, page, limit int) ([]OwnerOrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	dbCount := r.DB.Model(&entity.Order{}).Where("restaurant_id = ?", restID)
	if status != "" {
		dbCount = dbCount.Where("status = ?", status)
	}
	if err := dbCount.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// left join so pickup/delivery orders (no table) still list
	var rows []OwnerOrderSummary
	db := r.DB.Table("orders AS o").
		Select("o.id, o.reference, o.channel, o.status, o.total, o.customer_name, o.created_at, t.table_number").
		Joins("LEFT JOIN restaurant_tables t ON t.id = o.table_id").
		Where("o.restaurant_id = ? AND o.deleted_at IS NULL", restID)
	if status != "" {
		db = db.Where("o.status = ?", status)
	}
	if err := db.Order("o.id DESC").Limit(limit).Offset(offset).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// UpdateStatusFromTo flips the status only when the current value matches,
// so two dashboards racing on the same order cannot double-apply.
func (r *OrderRepository) UpdateStatusFromTo(orderID uint, from, to string) (bool, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *OrderRepository) CountForRestaurant(restID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).Where("restaurant_id = ?", restID).Count(&count).Error
	return count, err
}
