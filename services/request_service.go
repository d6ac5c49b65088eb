package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/pkmbilal/QR-Food-Menu-sub000/entity"
	"github.com/pkmbilal/QR-Food-Menu-sub000/repository"
	"github.com/pkmbilal/QR-Food-Menu-sub000/utils"
)

// RequestService runs the restaurant-request workflow: a customer applies,
// an admin approves (creating the restaurant and promoting the applicant)
// or rejects with a reason.
type RequestService struct {
	Repo     *repository.RequestRepository
	RestRepo *repository.RestaurantRepository
}

func NewRequestService(repo *repository.RequestRepository, restRepo *repository.RestaurantRepository) *RequestService {
	return &RequestService{Repo: repo, RestRepo: restRepo}
}

func (s *RequestService) Apply(req *entity.RestaurantRequest) (uint, error) {
	pending, err := s.Repo.HasPending(req.UserID)
	if err != nil {
		return 0, err
	}
	if pending {
		return 0, errors.New("you already have a pending request")
	}

	req.Status = entity.RequestStatusPending
	if err := s.Repo.Create(req); err != nil {
		return 0, err
	}
	return req.ID, nil
}

func (s *RequestService) ListMine(userID uint) ([]entity.RestaurantRequest, error) {
	return s.Repo.ListForUser(userID)
}

func (s *RequestService) List(status string) ([]entity.RestaurantRequest, error) {
	if status == "" {
		status = entity.RequestStatusPending
	}
	return s.Repo.FindByStatus(status)
}

// uniqueSlug derives a slug from the restaurant name, suffixing a counter
// when the plain slug is taken.
func (s *RequestService) uniqueSlug(name string) (string, error) {
	base := utils.Slugify(name)
	if base == "" {
		base = "restaurant"
	}
	slug := base
	for i := 2; ; i++ {
		taken, err := s.RestRepo.SlugExists(slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

func (s *RequestService) Approve(reviewerID, requestID uint) (*entity.Restaurant, error) {
	req, err := s.Repo.FindByID(requestID)
	if err != nil {
		return nil, errors.New("request not found")
	}
	if req.Status != entity.RequestStatusPending {
		return nil, errors.New("request is not pending")
	}

	slug, err := s.uniqueSlug(req.Name)
	if err != nil {
		return nil, err
	}

	rest := entity.Restaurant{
		Slug:              slug,
		Name:              req.Name,
		Description:       req.Description,
		PhoneNumber:       req.PhoneNumber,
		Address:           req.Address,
		CityID:            req.CityID,
		CuisineID:         req.CuisineID,
		IsVegetarian:      req.IsVegetarian,
		PickupAvailable:   req.PickupAvailable,
		DeliveryAvailable: req.DeliveryAvailable,
		IsActive:          true,
		OwnerID:           req.UserID,
	}

	if err := s.Repo.CreateRestaurantAndApprove(req, &rest, reviewerID, time.Now()); err != nil {
		return nil, err
	}
	return &rest, nil
}

func (s *RequestService) Reject(reviewerID, requestID uint, reason string) error {
	if reason == "" {
		return errors.New("rejection reason is required")
	}
	req, err := s.Repo.FindByID(requestID)
	if err != nil {
		return errors.New("request not found")
	}
	if req.Status != entity.RequestStatusPending {
		return errors.New("cannot reject request with status " + req.Status)
	}
	return s.Repo.Reject(req, reason, reviewerID, time.Now())
}
