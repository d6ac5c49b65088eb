package services

import (
	"github.com/pkmbilal/QR-Food-Menu-sub000/entity"
	"github.com/pkmbilal/QR-Food-Menu-sub000/repository"
)

type FavoriteService struct {
	Repo     *repository.FavoriteRepository
	RestRepo *repository.RestaurantRepository
}

func NewFavoriteService(repo *repository.FavoriteRepository, restRepo *repository.RestaurantRepository) *FavoriteService {
	return &FavoriteService{Repo: repo, RestRepo: restRepo}
}

func (s *FavoriteService) List(userID uint) ([]entity.FavoriteRestaurant, error) {
	return s.Repo.ListForUser(userID)
}

func (s *FavoriteService) Add(userID, restID uint) error {
	if _, err := s.RestRepo.FindByID(restID); err != nil {
		return ErrRestaurantNotFound
	}
	return s.Repo.Add(userID, restID)
}

func (s *FavoriteService) Remove(userID, restID uint) error {
	return s.Repo.Remove(userID, restID)
}
