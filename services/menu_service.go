package services

import (
	"errors"

	"github.com/pkmbilal/QR-Food-Menu-sub000/entity"
	"github.com/pkmbilal/QR-Food-Menu-sub000/repository"
)

// MenuService handles the owner-side menu management. Every operation is
// scoped to the caller's own restaurant.
type MenuService struct {
	Repo     *repository.MenuRepository
	RestRepo *repository.RestaurantRepository
}

func NewMenuService(repo *repository.MenuRepository, restRepo *repository.RestaurantRepository) *MenuService {
	return &MenuService{Repo: repo, RestRepo: restRepo}
}

func (s *MenuService) restaurantOf(ownerID uint) (*entity.Restaurant, error) {
	rest, err := s.RestRepo.FindByOwner(ownerID)
	if err != nil {
		return nil, ErrForbidden
	}
	return rest, nil
}

// ----- Categories -----

func (s *MenuService) ListCategories(ownerID uint) ([]entity.Category, error) {
	rest, err := s.restaurantOf(ownerID)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListCategories(rest.ID)
}

func (s *MenuService) CreateCategory(ownerID uint, name string, sortOrder int) (*entity.Category, error) {
	rest, err := s.restaurantOf(ownerID)
	if err != nil {
		return nil, err
	}
	cat := &entity.Category{Name: name, SortOrder: sortOrder, RestaurantID: rest.ID}
	if err := s.Repo.CreateCategory(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *MenuService) UpdateCategory(ownerID, catID uint, updates map[string]any) error {
	rest, err := s.restaurantOf(ownerID)
	if err != nil {
		return err
	}
	if _, err := s.Repo.FindCategoryForRestaurant(catID, rest.ID); err != nil {
		return errors.New("category not found")
	}
	return s.Repo.UpdateCategory(catID, updates)
}

func (s *MenuService) DeleteCategory(ownerID, catID uint) error {
	rest, err := s.restaurantOf(ownerID)
	if err != nil {
		return err
	}
	if _, err := s.Repo.FindCategoryForRestaurant(catID, rest.ID); err != nil {
		return errors.New("category not found")
	}
	return s.Repo.DeleteCategory(catID)
}

// ----- Menu items -----

func (s *MenuService) ListItems(ownerID uint) ([]entity.MenuItem, error) {
	rest, err := s.restaurantOf(ownerID)
	if err != nil {
		return nil, err
	}
	// owners see the full menu, sold-out and hidden items included
	return s.Repo.ListItems(rest.ID, false)
}

type MenuItemIn struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	CategoryID   uint    `json:"categoryId" binding:"required"`
	IsVegetarian bool    `json:"isVegetarian"`
}

func (s *MenuService) CreateItem(ownerID uint, in *MenuItemIn) (*entity.MenuItem, error) {
	rest, err := s.restaurantOf(ownerID)
	if err != nil {
		return nil, err
	}
	if _, err := s.Repo.FindCategoryForRestaurant(in.CategoryID, rest.ID); err != nil {
		return nil, errors.New("category not found")
	}
	item := &entity.MenuItem{
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		CategoryID:   in.CategoryID,
		RestaurantID: rest.ID,
		IsAvailable:  true,
		IsVegetarian: in.IsVegetarian,
	}
	if err := s.Repo.CreateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) UpdateItem(ownerID, itemID uint, updates map[string]any) (*entity.MenuItem, error) {
	rest, err := s.restaurantOf(ownerID)
	if err != nil {
		return nil, err
	}
	if _, err := s.Repo.FindItemForRestaurant(itemID, rest.ID); err != nil {
		return nil, errors.New("menu item not found")
	}
	allowed := map[string]bool{
		"name": true, "description": true, "price": true, "category_id": true,
		"is_available": true, "is_sold_out": true, "is_vegetarian": true,
	}
	filtered := make(map[string]any, len(updates))
	for k, v := range updates {
		if allowed[k] {
			filtered[k] = v
		}
	}
	if len(filtered) > 0 {
		if err := s.Repo.UpdateItem(itemID, filtered); err != nil {
			return nil, err
		}
	}
	return s.Repo.FindItemForRestaurant(itemID, rest.ID)
}

func (s *MenuService) DeleteItem(ownerID, itemID uint) error {
	rest, err := s.restaurantOf(ownerID)
	if err != nil {
		return err
	}
	if _, err := s.Repo.FindItemForRestaurant(itemID, rest.ID); err != nil {
		return errors.New("menu item not found")
	}
	return s.Repo.DeleteItem(itemID)
}
