package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/pkmbilal/QR-Food-Menu-sub000/pkg/resp"
	"github.com/pkmbilal/QR-Food-Menu-sub000/services"
	"github.com/pkmbilal/QR-Food-Menu-sub000/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Service: svc}
}

// POST /api/orders
// Guests and logged-in customers share this endpoint; OptionalAuth decides
// whether the order gets a user attached.
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.Service.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRestaurantNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrChannelDisabled),
			errors.Is(err, services.ErrTableCodeMissing),
			errors.Is(err, services.ErrInvalidTableCode),
			errors.Is(err, services.ErrEmptyOrder),
			errors.Is(err, services.ErrItemUnavailable):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ok":          true,
		"orderId":     out.OrderID,
		"reference":   out.Reference,
		"tableNumber": out.TableNumber,
		"total":       out.Total,
	})
}

// GET /api/profile/orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, err := oc.Service.ListForUser(utils.CurrentUserID(c), limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /api/orders/:id (owner of the order only)
func (oc *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	detail, err := oc.Service.DetailForUser(utils.CurrentUserID(c), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, detail)
}

// ----- Owner endpoints -----

// GET /api/owner/orders?status=&page=&limit=
func (oc *OrderController) ListForOwner(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	status := c.Query("status")

	out, err := oc.Service.ListForRestaurant(utils.CurrentUserID(c), status, page, limit)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			resp.Forbidden(c, "no restaurant for this account")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/owner/orders/:id
func (oc *OrderController) DetailForOwner(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	detail, err := oc.Service.DetailForRestaurant(utils.CurrentUserID(c), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			resp.Forbidden(c, "no restaurant for this account")
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, "order not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, detail)
}

type UpdateOrderStatusReq struct {
	Status string `json:"status" binding:"required,oneof=preparing ready completed cancelled"`
}

// PATCH /api/owner/orders/:id/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req UpdateOrderStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := oc.Service.UpdateStatus(utils.CurrentUserID(c), uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			resp.Forbidden(c, "no restaurant for this account")
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrInvalidTransition):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"status": req.Status})
}
