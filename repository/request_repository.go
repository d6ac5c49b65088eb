package repository

import (
	"time"

	"github.com/pkmbilal/QR-Food-Menu-sub000/entity"

	"gorm.io/gorm"
)

type RequestRepository struct {
	DB *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{DB: db}
}

func (r *RequestRepository) Create(req *entity.RestaurantRequest) error {
	return r.DB.Create(req).Error
}

func (r *RequestRepository) FindByStatus(status string) ([]entity.RestaurantRequest, error) {
	var out []entity.RestaurantRequest
	err := r.DB.
		Preload("User").
		Preload("City").
		Preload("Cuisine").
		Where("status = ?", status).
		Order("id DESC").
		Find(&out).Error
	return out, err
}

func (r *RequestRepository) FindByID(id uint) (*entity.RestaurantRequest, error) {
	var req entity.RestaurantRequest
	if err := r.DB.
		Preload("User").
		Preload("City").
		Preload("Cuisine").
		First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *RequestRepository) ListForUser(userID uint) ([]entity.RestaurantRequest, error) {
	var out []entity.RestaurantRequest
	err := r.DB.Where("user_id = ?", userID).Order("id DESC").Find(&out).Error
	return out, err
}

func (r *RequestRepository) HasPending(userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.RestaurantRequest{}).
		Where("user_id = ? AND status = ?", userID, entity.RequestStatusPending).
		Count(&count).Error
	return count > 0, err
}

// CreateRestaurantAndApprove runs the whole approval as one transaction:
// create the restaurant, promote the applicant to owner, stamp the request.
func (r *RequestRepository) CreateRestaurantAndApprove(req *entity.RestaurantRequest, rest *entity.Restaurant, reviewerID uint, now time.Time) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rest).Error; err != nil {
			return err
		}

		if err := tx.Model(&entity.User{}).Where("id = ?", req.UserID).
			Where("role = '' OR role = ?", entity.RoleCustomer).
			Update("role", entity.RoleOwner).Error; err != nil {
			return err
		}

		req.Status = entity.RequestStatusApproved
		req.ReviewedByID = &reviewerID
		req.ReviewedAt = &now
		return tx.Save(req).Error
	})
}

func (r *RequestRepository) Reject(req *entity.RestaurantRequest, reason string, reviewerID uint, now time.Time) error {
	req.Status = entity.RequestStatusRejected
	req.ReviewedByID = &reviewerID
	req.ReviewedAt = &now
	req.RejectionReason = &reason
	return r.DB.Save(req).Error
}
