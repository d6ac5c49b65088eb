package controllers

import (
	"strconv"

	"github.com/pkmbilal/QR-Food-Menu-sub000/entity"
	"github.com/pkmbilal/QR-Food-Menu-sub000/pkg/resp"
	"github.com/pkmbilal/QR-Food-Menu-sub000/services"
	"github.com/pkmbilal/QR-Food-Menu-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	RequestService    *services.RequestService
	RestaurantService *services.RestaurantService
	DB                *gorm.DB
}

func NewAdminController(reqSvc *services.RequestService, restSvc *services.RestaurantService, db *gorm.DB) *AdminController {
	return &AdminController{RequestService: reqSvc, RestaurantService: restSvc, DB: db}
}

// GET /api/admin/dashboard
func (ac *AdminController) Dashboard(c *gin.Context) {
	var restaurants, orders, users, pending int64
	ac.DB.Model(&entity.Restaurant{}).Count(&restaurants)
	ac.DB.Model(&entity.Order{}).Count(&orders)
	ac.DB.Model(&entity.User{}).Count(&users)
	ac.DB.Model(&entity.RestaurantRequest{}).
		Where("status = ?", entity.RequestStatusPending).Count(&pending)

	resp.OK(c, gin.H{
		"restaurants":     restaurants,
		"orders":          orders,
		"users":           users,
		"pendingRequests": pending,
	})
}

// ----- Restaurant requests -----

// GET /api/admin/restaurant-requests?status=pending
func (ac *AdminController) Requests(c *gin.Context) {
	items, err := ac.RequestService.List(c.Query("status"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// PATCH /api/admin/restaurant-requests/:id/approve
func (ac *AdminController) ApproveRequest(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	rest, err := ac.RequestService.Approve(utils.CurrentUserID(c), uint(id))
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"restaurant": rest})
}

type RejectRequestReq struct {
	Reason string `json:"reason" binding:"required"`
}

// PATCH /api/admin/restaurant-requests/:id/reject
func (ac *AdminController) RejectRequest(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req RejectRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ac.RequestService.Reject(utils.CurrentUserID(c), uint(id), req.Reason); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"status": entity.RequestStatusRejected})
}

// ----- Restaurants -----

// GET /api/admin/restaurants
func (ac *AdminController) Restaurants(c *gin.Context) {
	items, err := ac.RestaurantService.AdminList()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

type AdminUpdateRestaurantReq struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// PATCH /api/admin/restaurants/:id — restaurants are never hard-deleted,
// admins only flip the active flag.
func (ac *AdminController) UpdateRestaurant(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req AdminUpdateRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ac.RestaurantService.AdminSetActive(uint(id), *req.IsActive); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"isActive": *req.IsActive})
}
