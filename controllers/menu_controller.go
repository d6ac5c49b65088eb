package controllers

import (
	"strconv"

	"github.com/pkmbilal/QR-Food-Menu-sub000/pkg/resp"
	"github.com/pkmbilal/QR-Food-Menu-sub000/services"
	"github.com/pkmbilal/QR-Food-Menu-sub000/utils"

	"github.com/gin-gonic/gin"
)

// MenuController is the owner-side menu management surface.
type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Service: svc}
}

// ----- Categories -----

// GET /api/owner/categories
func (mc *MenuController) ListCategories(c *gin.Context) {
	cats, err := mc.Service.ListCategories(utils.CurrentUserID(c))
	if err != nil {
		resp.Forbidden(c, "no restaurant for this account")
		return
	}
	resp.OK(c, gin.H{"items": cats})
}

type CategoryReq struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sortOrder"`
}

// POST /api/owner/categories
func (mc *MenuController) CreateCategory(c *gin.Context) {
	var req CategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat, err := mc.Service.CreateCategory(utils.CurrentUserID(c), req.Name, req.SortOrder)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, cat)
}

type UpdateCategoryReq struct {
	Name      *string `json:"name"`
	SortOrder *int    `json:"sortOrder"`
}

// PATCH /api/owner/categories/:id
func (mc *MenuController) UpdateCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req UpdateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}

	if err := mc.Service.UpdateCategory(utils.CurrentUserID(c), uint(id), updates); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"id": id})
}

// DELETE /api/owner/categories/:id
func (mc *MenuController) DeleteCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := mc.Service.DeleteCategory(utils.CurrentUserID(c), uint(id)); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"id": id})
}

// ----- Menu items -----

// GET /api/owner/menu
func (mc *MenuController) ListItems(c *gin.Context) {
	items, err := mc.Service.ListItems(utils.CurrentUserID(c))
	if err != nil {
		resp.Forbidden(c, "no restaurant for this account")
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /api/owner/menu
func (mc *MenuController) CreateItem(c *gin.Context) {
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := mc.Service.CreateItem(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, item)
}

type UpdateMenuItemReq struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	CategoryID   *uint    `json:"categoryId"`
	IsAvailable  *bool    `json:"isAvailable"`
	IsSoldOut    *bool    `json:"isSoldOut"`
	IsVegetarian *bool    `json:"isVegetarian"`
}

// PATCH /api/owner/menu/:id
func (mc *MenuController) UpdateItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req UpdateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Price != nil && *req.Price <= 0 {
		resp.BadRequest(c, "price must be positive")
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}
	if req.IsSoldOut != nil {
		updates["is_sold_out"] = *req.IsSoldOut
	}
	if req.IsVegetarian != nil {
		updates["is_vegetarian"] = *req.IsVegetarian
	}

	item, err := mc.Service.UpdateItem(utils.CurrentUserID(c), uint(id), updates)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, item)
}

// DELETE /api/owner/menu/:id
func (mc *MenuController) DeleteItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := mc.Service.DeleteItem(utils.CurrentUserID(c), uint(id)); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"id": id})
}
