package services

import (
	"fmt"

	"github.com/pkmbilal/QR-Food-Menu-sub000/entity"
	"github.com/pkmbilal/QR-Food-Menu-sub000/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderNotifier pushes a freshly created order to whoever is watching the
// restaurant's dashboard. Delivery is best-effort.
type OrderNotifier interface {
	NotifyNewOrder(restaurantID uint, payload any)
}

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	RestRepo  *repository.RestaurantRepository
	MenuRepo  *repository.MenuRepository
	TableRepo *repository.TableRepository
	Feed      OrderNotifier
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	restRepo *repository.RestaurantRepository,
	menuRepo *repository.MenuRepository,
	tableRepo *repository.TableRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, RestRepo: restRepo, MenuRepo: menuRepo, TableRepo: tableRepo}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	ID       uint `json:"id" binding:"required"`
	Quantity int  `json:"quantity"`
}

type CustomerIn struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type CreateOrderReq struct {
	RestaurantSlug string        `json:"restaurantSlug" binding:"required"`
	Channel        string        `json:"channel" binding:"required,oneof=pickup delivery dine_in"`
	TableCode      string        `json:"tableCode"`
	Items          []OrderItemIn `json:"items"`
	Customer       CustomerIn    `json:"customer"`
}

type CreateOrderRes struct {
	OrderID     uint    `json:"orderId"`
	Reference   string  `json:"reference"`
	TableNumber *int    `json:"tableNumber"`
	Total       float64 `json:"total"`
}

// Create validates an incoming order against current restaurant and menu
// state, then persists Order + OrderItems in one transaction. All rejections
// happen before the first write. userID is 0 for guests.
func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*CreateOrderRes, error) {
	rest, err := s.RestRepo.FindActiveBySlug(req.RestaurantSlug)
	if err != nil {
		return nil, ErrRestaurantNotFound
	}

	switch req.Channel {
	case entity.ChannelPickup:
		if !rest.PickupAvailable {
			return nil, ErrChannelDisabled
		}
	case entity.ChannelDelivery:
		if !rest.DeliveryAvailable {
			return nil, ErrChannelDisabled
		}
	}

	// dine_in needs the table capability token from the scanned QR
	var table *entity.RestaurantTable
	if req.Channel == entity.ChannelDineIn {
		if req.TableCode == "" {
			return nil, ErrTableCodeMissing
		}
		table, err = s.TableRepo.FindActiveByCode(rest.ID, req.TableCode)
		if err != nil {
			return nil, ErrInvalidTableCode
		}
	}

	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	ids := make([]uint, 0, len(req.Items))
	for _, it := range req.Items {
		ids = append(ids, it.ID)
	}
	menuRows, err := s.MenuRepo.FindItemsByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]entity.MenuItem, len(menuRows))
	for _, m := range menuRows {
		byID[m.ID] = m
	}

	// price each line from the authoritative row; client prices never read
	var total float64
	type line struct {
		item entity.MenuItem
		qty  int
	}
	lines := make([]line, 0, len(req.Items))
	for _, in := range req.Items {
		m, ok := byID[in.ID]
		if !ok {
			return nil, fmt.Errorf("%w: unknown item %d", ErrItemUnavailable, in.ID)
		}
		if m.RestaurantID != rest.ID {
			return nil, fmt.Errorf("%w: %s", ErrItemUnavailable, m.Name)
		}
		if !m.IsAvailable || m.IsSoldOut {
			return nil, fmt.Errorf("%w: %s", ErrItemUnavailable, m.Name)
		}
		qty := in.Quantity
		if qty <= 0 {
			qty = 1
		}
		total += m.Price * float64(qty)
		lines = append(lines, line{item: m, qty: qty})
	}

	order := entity.Order{
		Reference:       uuid.NewString(),
		Channel:         req.Channel,
		Status:          entity.OrderStatusNew,
		Total:           total,
		RestaurantID:    rest.ID,
		CustomerName:    req.Customer.Name,
		CustomerPhone:   req.Customer.Phone,
		CustomerAddress: req.Customer.Address,
	}
	if table != nil {
		order.TableID = &table.ID
	}
	if userID != 0 {
		uid := userID
		order.UserID = &uid
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, l := range lines {
			oi := entity.OrderItem{
				ItemName:   l.item.Name,
				UnitPrice:  l.item.Price,
				Qty:        l.qty,
				Total:      l.item.Price * float64(l.qty),
				OrderID:    order.ID,
				MenuItemID: l.item.ID,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := &CreateOrderRes{OrderID: order.ID, Reference: order.Reference, Total: order.Total}
	if table != nil {
		n := table.TableNumber
		out.TableNumber = &n
	}

	if s.Feed != nil {
		s.Feed.NotifyNewOrder(rest.ID, out)
	}
	return out, nil
}

// ----- List & Detail -----

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

type OrderDetail struct {
	Order entity.Order       `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}

type OwnerOrderListOut struct {
	Items []repository.OwnerOrderSummary `json:"items"`
	Total int64                          `json:"total"`
	Page  int                            `json:"page"`
	Limit int                            `json:"limit"`
}

func (s *OrderService) ListForRestaurant(ownerID uint, status string, page, limit int) (*OwnerOrderListOut, error) {
	rest, err := s.RestRepo.FindByOwner(ownerID)
	if err != nil {
		return nil, ErrForbidden
	}

	items, total, err := s.Repo.ListOrdersForRestaurant(rest.ID, status, page, limit)
	if err != nil {
		return nil, err
	}
	return &OwnerOrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *OrderService) DetailForRestaurant(ownerID, orderID uint) (*OrderDetail, error) {
	rest, err := s.RestRepo.FindByOwner(ownerID)
	if err != nil {
		return nil, ErrForbidden
	}
	o, err := s.Repo.GetOrderForRestaurant(rest.ID, orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}
