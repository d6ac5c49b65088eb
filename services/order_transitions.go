package services

import "github.com/pkmbilal/QR-Food-Menu-sub000/entity"

// Owner-driven status flow. completed and cancelled are terminal.
var orderTransitions = map[string][]string{
	entity.OrderStatusNew:       {entity.OrderStatusPreparing, entity.OrderStatusCancelled},
	entity.OrderStatusPreparing: {entity.OrderStatusReady, entity.OrderStatusCancelled},
	entity.OrderStatusReady:     {entity.OrderStatusCompleted},
}

func transitionAllowed(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// UpdateStatus moves an order along the status flow on behalf of the
// restaurant owner. The final write is guarded on the current status, so a
// stale dashboard cannot double-apply a transition.
func (s *OrderService) UpdateStatus(ownerID, orderID uint, to string) error {
	rest, err := s.RestRepo.FindByOwner(ownerID)
	if err != nil {
		return ErrForbidden
	}

	o, err := s.Repo.GetOrderForRestaurant(rest.ID, orderID)
	if err != nil {
		return ErrOrderNotFound
	}
	if !transitionAllowed(o.Status, to) {
		return ErrInvalidTransition
	}

	ok, err := s.Repo.UpdateStatusFromTo(o.ID, o.Status, to)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidTransition
	}
	return nil
}
