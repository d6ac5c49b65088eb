package controllers

import (
	"encoding/json"
	"errors"

	"github.com/pkmbilal/QR-Food-Menu-sub000/entity"
	"github.com/pkmbilal/QR-Food-Menu-sub000/pkg/cache"
	"github.com/pkmbilal/QR-Food-Menu-sub000/pkg/resp"
	"github.com/pkmbilal/QR-Food-Menu-sub000/repository"
	"github.com/pkmbilal/QR-Food-Menu-sub000/services"
	"github.com/pkmbilal/QR-Food-Menu-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RestaurantController struct {
	Service *services.RestaurantService
	Cache   *cache.Cache // nil when Redis is not configured
	DB      *gorm.DB
}

func NewRestaurantController(svc *services.RestaurantService, ch *cache.Cache, db *gorm.DB) *RestaurantController {
	return &RestaurantController{Service: svc, Cache: ch, DB: db}
}

// GET /api/restaurants?city=&cuisine=&q=&vegetarian=
func (rc *RestaurantController) List(c *gin.Context) {
	filter := repository.RestaurantFilter{
		City:       c.Query("city"),
		Cuisine:    c.Query("cuisine"),
		Query:      c.Query("q"),
		Vegetarian: c.Query("vegetarian") == "true",
	}

	// only the unfiltered listing is worth caching
	unfiltered := filter == (repository.RestaurantFilter{})
	const cacheKey = "restaurants:all"
	if unfiltered {
		if raw, ok := rc.Cache.Get(c.Request.Context(), cacheKey); ok {
			var items []entity.Restaurant
			if json.Unmarshal([]byte(raw), &items) == nil {
				resp.OK(c, gin.H{"items": items})
				return
			}
		}
	}

	items, err := rc.Service.Discover(filter)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	if unfiltered {
		if raw, err := json.Marshal(items); err == nil {
			rc.Cache.Set(c.Request.Context(), cacheKey, string(raw))
		}
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /api/restaurants/:slug?t=<tableCode>
func (rc *RestaurantController) Menu(c *gin.Context) {
	view, err := rc.Service.PublicMenu(c.Param("slug"), c.Query("t"))
	if err != nil {
		if errors.Is(err, services.ErrRestaurantNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, view)
}

// GET /api/cities
func (rc *RestaurantController) Cities(c *gin.Context) {
	var cities []entity.City
	if err := rc.DB.Order("name").Find(&cities).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cities})
}

// GET /api/cuisines
func (rc *RestaurantController) Cuisines(c *gin.Context) {
	var cuisines []entity.Cuisine
	if err := rc.DB.Order("name").Find(&cuisines).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cuisines})
}

// ----- Owner -----

// GET /api/owner/restaurant
func (rc *RestaurantController) MyRestaurant(c *gin.Context) {
	rest, err := rc.Service.GetForOwner(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "no restaurant for this account")
		return
	}
	resp.OK(c, rest)
}

type UpdateRestaurantReq struct {
	Name              *string `json:"name"`
	Description       *string `json:"description"`
	PhoneNumber       *string `json:"phoneNumber"`
	Address           *string `json:"address"`
	PickupAvailable   *bool   `json:"pickupAvailable"`
	DeliveryAvailable *bool   `json:"deliveryAvailable"`
	IsVegetarian      *bool   `json:"isVegetarian"`
}

// PATCH /api/owner/restaurant
func (rc *RestaurantController) UpdateMyRestaurant(c *gin.Context) {
	var req UpdateRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.PickupAvailable != nil {
		updates["pickup_available"] = *req.PickupAvailable
	}
	if req.DeliveryAvailable != nil {
		updates["delivery_available"] = *req.DeliveryAvailable
	}
	if req.IsVegetarian != nil {
		updates["is_vegetarian"] = *req.IsVegetarian
	}

	rest, err := rc.Service.OwnerUpdate(utils.CurrentUserID(c), updates)
	if err != nil {
		if errors.Is(err, services.ErrRestaurantNotFound) {
			resp.NotFound(c, "no restaurant for this account")
			return
		}
		resp.ServerError(c, err)
		return
	}

	rc.Cache.Delete(c.Request.Context(), "restaurants:all")
	resp.OK(c, rest)
}
