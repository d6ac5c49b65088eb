package controllers

import (
	"github.com/pkmbilal/QR-Food-Menu-sub000/entity"
	"github.com/pkmbilal/QR-Food-Menu-sub000/pkg/resp"
	"github.com/pkmbilal/QR-Food-Menu-sub000/services"
	"github.com/pkmbilal/QR-Food-Menu-sub000/utils"

	"github.com/gin-gonic/gin"
)

type RequestController struct {
	Service *services.RequestService
}

func NewRequestController(svc *services.RequestService) *RequestController {
	return &RequestController{Service: svc}
}

type ApplyRequestReq struct {
	Name              string `json:"name" binding:"required"`
	Description       string `json:"description"`
	PhoneNumber       string `json:"phoneNumber"`
	Address           string `json:"address" binding:"required"`
	CityID            uint   `json:"cityId" binding:"required"`
	CuisineID         uint   `json:"cuisineId" binding:"required"`
	IsVegetarian      bool   `json:"isVegetarian"`
	PickupAvailable   bool   `json:"pickupAvailable"`
	DeliveryAvailable bool   `json:"deliveryAvailable"`
}

// POST /api/restaurant-requests
func (rc *RequestController) Apply(c *gin.Context) {
	var req ApplyRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	id, err := rc.Service.Apply(&entity.RestaurantRequest{
		Name:              req.Name,
		Description:       req.Description,
		PhoneNumber:       req.PhoneNumber,
		Address:           req.Address,
		CityID:            req.CityID,
		CuisineID:         req.CuisineID,
		IsVegetarian:      req.IsVegetarian,
		PickupAvailable:   req.PickupAvailable,
		DeliveryAvailable: req.DeliveryAvailable,
		UserID:            utils.CurrentUserID(c),
	})
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, gin.H{"id": id, "status": entity.RequestStatusPending})
}

// GET /api/restaurant-requests/mine
func (rc *RequestController) Mine(c *gin.Context) {
	items, err := rc.Service.ListMine(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}
