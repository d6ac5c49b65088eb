package services

import (
	"errors"

	"github.com/pkmbilal/QR-Food-Menu-sub000/entity"
	"github.com/pkmbilal/QR-Food-Menu-sub000/repository"
	"github.com/pkmbilal/QR-Food-Menu-sub000/utils"

	"gorm.io/gorm"
)

type TableService struct {
	DB       *gorm.DB
	Repo     *repository.TableRepository
	RestRepo *repository.RestaurantRepository
}

func NewTableService(db *gorm.DB, repo *repository.TableRepository, restRepo *repository.RestaurantRepository) *TableService {
	return &TableService{DB: db, Repo: repo, RestRepo: restRepo}
}

// Generate creates the missing tables numbered 1..count for the caller's
// restaurant, each with a fresh random code. Numbers that already exist are
// skipped, so regenerating never duplicates or replaces a table.
func (s *TableService) Generate(ownerID, restID uint, count int) (int, error) {
	if count < 1 || count > 200 {
		return 0, errors.New("count must be between 1 and 200")
	}

	ok, err := s.RestRepo.IsOwnedBy(restID, ownerID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrForbidden
	}

	existing, err := s.Repo.ExistingNumbers(restID)
	if err != nil {
		return 0, err
	}

	created := 0
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for n := 1; n <= count; n++ {
			if existing[n] {
				continue
			}
			code, err := utils.NewTableCode()
			if err != nil {
				return err
			}
			t := entity.RestaurantTable{
				RestaurantID: restID,
				TableNumber:  n,
				Code:         code,
				IsActive:     true,
			}
			if err := s.Repo.Create(tx, &t); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

// Resolve maps a scanned table code to its display number. Codes belonging
// to other restaurants or inactive tables resolve to nothing.
func (s *TableService) Resolve(restID uint, code string) (*int, error) {
	if code == "" {
		return nil, nil
	}
	t, err := s.Repo.FindActiveByCode(restID, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	n := t.TableNumber
	return &n, nil
}

func (s *TableService) ListForOwner(ownerID uint) ([]entity.RestaurantTable, error) {
	rest, err := s.RestRepo.FindByOwner(ownerID)
	if err != nil {
		return nil, ErrForbidden
	}
	return s.Repo.ListForRestaurant(rest.ID)
}

func (s *TableService) SetActive(ownerID, tableID uint, active bool) error {
	rest, err := s.RestRepo.FindByOwner(ownerID)
	if err != nil {
		return ErrForbidden
	}
	if _, err := s.Repo.FindForRestaurant(tableID, rest.ID); err != nil {
		return ErrTableNotFound
	}
	return s.Repo.SetActive(tableID, active)
}

// GetForOwner returns one of the owner's tables, for the QR endpoint.
func (s *TableService) GetForOwner(ownerID, tableID uint) (*entity.RestaurantTable, *entity.Restaurant, error) {
	rest, err := s.RestRepo.FindByOwner(ownerID)
	if err != nil {
		return nil, nil, ErrForbidden
	}
	t, err := s.Repo.FindForRestaurant(tableID, rest.ID)
	if err != nil {
		return nil, nil, ErrTableNotFound
	}
	return t, rest, nil
}
