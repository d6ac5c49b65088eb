package services

import (
	"testing"

	"github.com/pkmbilal/QR-Food-Menu-sub000/entity"
	"github.com/pkmbilal/QR-Food-Menu-sub000/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRequestService(db *gorm.DB) *RequestService {
	return NewRequestService(
		repository.NewRequestRepository(db),
		repository.NewRestaurantRepository(db),
	)
}

func seedRequest(t *testing.T, db *gorm.DB, svc *RequestService, email, name string) (*entity.User, uint) {
	t.Helper()
	applicant := seedUser(t, db, email, entity.RoleCustomer)
	id, err := svc.Apply(&entity.RestaurantRequest{
		Name:            name,
		Address:         "Main St 1",
		CityID:          1,
		CuisineID:       1,
		PickupAvailable: true,
		UserID:          applicant.ID,
	})
	require.NoError(t, err)
	return applicant, id
}

func TestApprove_CreatesRestaurantAndPromotesOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := newRequestService(db)

	admin := seedUser(t, db, "admin@example.com", entity.RoleAdmin)
	applicant, reqID := seedRequest(t, db, svc, "applicant@example.com", "Cafe Luna")

	rest, err := svc.Approve(admin.ID, reqID)
	require.NoError(t, err)
	assert.Equal(t, "cafe-luna", rest.Slug)
	assert.Equal(t, applicant.ID, rest.OwnerID)
	assert.True(t, rest.IsActive)
	assert.True(t, rest.PickupAvailable)

	var u entity.User
	require.NoError(t, db.First(&u, applicant.ID).Error)
	assert.Equal(t, entity.RoleOwner, u.Role)

	var req entity.RestaurantRequest
	require.NoError(t, db.First(&req, reqID).Error)
	assert.Equal(t, entity.RequestStatusApproved, req.Status)
	require.NotNil(t, req.ReviewedByID)
	assert.Equal(t, admin.ID, *req.ReviewedByID)
	assert.NotNil(t, req.ReviewedAt)

	// terminal state: approving twice fails
	_, err = svc.Approve(admin.ID, reqID)
	assert.Error(t, err)
}

func TestApprove_SlugCollisionGetsSuffix(t *testing.T) {
	db := setupTestDB(t)
	svc := newRequestService(db)

	admin := seedUser(t, db, "admin2@example.com", entity.RoleAdmin)
	_, first := seedRequest(t, db, svc, "a@example.com", "Burger Spot")
	_, second := seedRequest(t, db, svc, "b@example.com", "Burger Spot")

	r1, err := svc.Approve(admin.ID, first)
	require.NoError(t, err)
	r2, err := svc.Approve(admin.ID, second)
	require.NoError(t, err)

	assert.Equal(t, "burger-spot", r1.Slug)
	assert.Equal(t, "burger-spot-2", r2.Slug)
}

func TestApprove_DisabledChannelsStayDisabled(t *testing.T) {
	db := setupTestDB(t)
	svc := newRequestService(db)

	admin := seedUser(t, db, "admin4@example.com", entity.RoleAdmin)
	applicant := seedUser(t, db, "pickupless@example.com", entity.RoleCustomer)
	reqID, err := svc.Apply(&entity.RestaurantRequest{
		Name:              "Delivery Only",
		Address:           "Side St 9",
		CityID:            1,
		CuisineID:         1,
		PickupAvailable:   false,
		DeliveryAvailable: true,
		UserID:            applicant.ID,
	})
	require.NoError(t, err)

	rest, err := svc.Approve(admin.ID, reqID)
	require.NoError(t, err)

	// reload from the DB: a false flag must not get rewritten on insert
	var stored entity.Restaurant
	require.NoError(t, db.First(&stored, rest.ID).Error)
	assert.False(t, stored.PickupAvailable)
	assert.True(t, stored.DeliveryAvailable)
	assert.True(t, stored.IsActive)
}

func TestReject_RequiresReasonAndStampsReviewer(t *testing.T) {
	db := setupTestDB(t)
	svc := newRequestService(db)

	admin := seedUser(t, db, "admin3@example.com", entity.RoleAdmin)
	applicant, reqID := seedRequest(t, db, svc, "c@example.com", "Doomed Diner")

	assert.Error(t, svc.Reject(admin.ID, reqID, ""))

	require.NoError(t, svc.Reject(admin.ID, reqID, "incomplete address"))

	var req entity.RestaurantRequest
	require.NoError(t, db.First(&req, reqID).Error)
	assert.Equal(t, entity.RequestStatusRejected, req.Status)
	require.NotNil(t, req.RejectionReason)
	assert.Equal(t, "incomplete address", *req.RejectionReason)

	// applicant stays a customer, no restaurant appears
	var u entity.User
	require.NoError(t, db.First(&u, applicant.ID).Error)
	assert.Equal(t, entity.RoleCustomer, u.Role)

	var count int64
	db.Model(&entity.Restaurant{}).Count(&count)
	assert.Zero(t, count)

	// rejected is terminal too
	assert.Error(t, svc.Reject(admin.ID, reqID, "again"))
}

func TestApply_OnePendingRequestPerUser(t *testing.T) {
	db := setupTestDB(t)
	svc := newRequestService(db)

	applicant, _ := seedRequest(t, db, svc, "d@example.com", "First Try")

	_, err := svc.Apply(&entity.RestaurantRequest{
		Name:    "Second Try",
		Address: "Other St",
		UserID:  applicant.ID,
	})
	assert.Error(t, err)
}
