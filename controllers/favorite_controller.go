package controllers

import (
	"errors"
	"strconv"

	"github.com/pkmbilal/QR-Food-Menu-sub000/pkg/resp"
	"github.com/pkmbilal/QR-Food-Menu-sub000/services"
	"github.com/pkmbilal/QR-Food-Menu-sub000/utils"

	"github.com/gin-gonic/gin"
)

type FavoriteController struct {
	Service *services.FavoriteService
}

func NewFavoriteController(svc *services.FavoriteService) *FavoriteController {
	return &FavoriteController{Service: svc}
}

// GET /api/profile/favorites
func (fc *FavoriteController) List(c *gin.Context) {
	items, err := fc.Service.List(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

type AddFavoriteReq struct {
	RestaurantID uint `json:"restaurantId" binding:"required"`
}

// POST /api/profile/favorites
func (fc *FavoriteController) Add(c *gin.Context) {
	var req AddFavoriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := fc.Service.Add(utils.CurrentUserID(c), req.RestaurantID); err != nil {
		if errors.Is(err, services.ErrRestaurantNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"restaurantId": req.RestaurantID})
}

// DELETE /api/profile/favorites/:restaurantId
func (fc *FavoriteController) Remove(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("restaurantId"))
	if err := fc.Service.Remove(utils.CurrentUserID(c), uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurantId": id})
}
