package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/pkmbilal/QR-Food-Menu-sub000/pkg/resp"
	"github.com/pkmbilal/QR-Food-Menu-sub000/services"
	"github.com/pkmbilal/QR-Food-Menu-sub000/utils"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

type TableController struct {
	Service *services.TableService

	// base URL the QR codes point guests at
	PublicBaseURL string
}

func NewTableController(svc *services.TableService, publicBaseURL string) *TableController {
	return &TableController{Service: svc, PublicBaseURL: publicBaseURL}
}

type GenerateTablesReq struct {
	Count int `json:"count" binding:"required,min=1,max=200"`
}

// POST /api/restaurants/:restaurantId/tables/generate (owner)
func (tc *TableController) Generate(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("restaurantId"))

	var req GenerateTablesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	created, err := tc.Service.Generate(utils.CurrentUserID(c), uint(restID), req.Count)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			resp.Forbidden(c, "not your restaurant")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "created": created})
}

type ResolveTableReq struct {
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	TableCode    string `json:"tableCode" binding:"required"`
}

// POST /api/table/resolve (public)
// tableNumber is null when the code is unknown, inactive, or belongs to a
// different restaurant.
func (tc *TableController) Resolve(c *gin.Context) {
	var req ResolveTableReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	number, err := tc.Service.Resolve(req.RestaurantID, req.TableCode)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tableNumber": number})
}

// GET /api/owner/tables
func (tc *TableController) ListForOwner(c *gin.Context) {
	tables, err := tc.Service.ListForOwner(utils.CurrentUserID(c))
	if err != nil {
		resp.Forbidden(c, "no restaurant for this account")
		return
	}
	resp.OK(c, gin.H{"items": tables})
}

type UpdateTableReq struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// PATCH /api/owner/tables/:id — disable a table without deleting it
func (tc *TableController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req UpdateTableReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := tc.Service.SetActive(utils.CurrentUserID(c), uint(id), *req.IsActive)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			resp.Forbidden(c, "no restaurant for this account")
		case errors.Is(err, services.ErrTableNotFound):
			resp.NotFound(c, "table not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"isActive": *req.IsActive})
}

// GET /api/owner/tables/:id/qr.png
// Renders the printable QR that goes on the physical table. The encoded URL
// opens the public menu with the table code attached.
func (tc *TableController) QRCode(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	table, rest, err := tc.Service.GetForOwner(utils.CurrentUserID(c), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			resp.Forbidden(c, "no restaurant for this account")
		case errors.Is(err, services.ErrTableNotFound):
			resp.NotFound(c, "table not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}

	url := fmt.Sprintf("%s/r/%s?t=%s", tc.PublicBaseURL, rest.Slug, table.Code)
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
