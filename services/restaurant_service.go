package services

import (
	"errors"

	"github.com/pkmbilal/QR-Food-Menu-sub000/entity"
	"github.com/pkmbilal/QR-Food-Menu-sub000/repository"

	"gorm.io/gorm"
)

type RestaurantService struct {
	Repo      *repository.RestaurantRepository
	MenuRepo  *repository.MenuRepository
	TableRepo *repository.TableRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository, menuRepo *repository.MenuRepository, tableRepo *repository.TableRepository) *RestaurantService {
	return &RestaurantService{Repo: repo, MenuRepo: menuRepo, TableRepo: tableRepo}
}

func (s *RestaurantService) Discover(f repository.RestaurantFilter) ([]entity.Restaurant, error) {
	return s.Repo.ListActive(f)
}

// MenuView is the public menu payload rendered behind a scanned QR.
type MenuView struct {
	Restaurant  entity.Restaurant `json:"restaurant"`
	Categories  []entity.Category `json:"categories"`
	Items       []entity.MenuItem `json:"items"`
	TableNumber *int              `json:"tableNumber,omitempty"`
}

// PublicMenu loads a restaurant's browsable menu by slug. When a table code
// accompanies the request (dine-in QR scan), the resolved table number is
// echoed back so the client can tag the session; a bad code just resolves to
// nothing rather than failing the menu load.
func (s *RestaurantService) PublicMenu(slug, tableCode string) (*MenuView, error) {
	rest, err := s.Repo.FindActiveBySlug(slug)
	if err != nil {
		return nil, ErrRestaurantNotFound
	}

	cats, err := s.MenuRepo.ListCategories(rest.ID)
	if err != nil {
		return nil, err
	}
	items, err := s.MenuRepo.ListItems(rest.ID, true)
	if err != nil {
		return nil, err
	}

	view := &MenuView{Restaurant: *rest, Categories: cats, Items: items}
	if tableCode != "" {
		t, err := s.TableRepo.FindActiveByCode(rest.ID, tableCode)
		switch {
		case err == nil:
			n := t.TableNumber
			view.TableNumber = &n
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}
	}
	return view, nil
}

// ----- Owner -----

func (s *RestaurantService) GetForOwner(ownerID uint) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByOwner(ownerID)
	if err != nil {
		return nil, ErrRestaurantNotFound
	}
	return rest, nil
}

// OwnerUpdate applies the editable subset of restaurant fields. Slug, owner
// and active flag stay admin-controlled.
func (s *RestaurantService) OwnerUpdate(ownerID uint, updates map[string]any) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByOwner(ownerID)
	if err != nil {
		return nil, ErrRestaurantNotFound
	}
	allowed := map[string]bool{
		"name": true, "description": true, "phone_number": true, "address": true,
		"pickup_available": true, "delivery_available": true, "is_vegetarian": true,
	}
	filtered := make(map[string]any, len(updates))
	for k, v := range updates {
		if allowed[k] {
			filtered[k] = v
		}
	}
	if len(filtered) > 0 {
		if err := s.Repo.Update(rest.ID, filtered); err != nil {
			return nil, err
		}
	}
	return s.Repo.FindByID(rest.ID)
}

// ----- Admin -----

func (s *RestaurantService) AdminList() ([]entity.Restaurant, error) {
	return s.Repo.ListAll()
}

func (s *RestaurantService) AdminSetActive(restID uint, active bool) error {
	if _, err := s.Repo.FindByID(restID); err != nil {
		return ErrRestaurantNotFound
	}
	return s.Repo.SetActive(restID, active)
}
