package controllers

import (
	"errors"
	"strconv"

	"github.com/lindltaylor7/monoessam/pkg/resp"
	"github.com/lindltaylor7/monoessam/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PurchaseOrderController struct {
	Quebrados *services.QuebradosService
}

func NewPurchaseOrderController(q *services.QuebradosService) *PurchaseOrderController {
	return &PurchaseOrderController{Quebrados: q}
}

// GET /purchase-orders
func (ctl *PurchaseOrderController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	orders, err := ctl.Quebrados.Orders.ListOrders(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /purchase-orders/:id
func (ctl *PurchaseOrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	order, err := ctl.Quebrados.Orders.GetOrderWithItems(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "purchase order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

type GenerateReq struct {
	Notes string `json:"notes"`
}

// POST /weekly-programs/:id/purchase-orders → quebrados for one program
func (ctl *PurchaseOrderController) GenerateFromProgram(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req GenerateReq
	_ = c.ShouldBindJSON(&req) // notes are optional

	result, err := ctl.Quebrados.GenerateFromProgram(uint(id), req.Notes)
	if err != nil {
		if errors.Is(err, services.ErrProgramNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, result)
}

type ExplodeReq struct {
	CafeID    uint   `json:"cafeId" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Notes     string `json:"notes"`
}

// POST /purchase-orders/explode → quebrados for a cafe and date window
func (ctl *PurchaseOrderController) Explode(c *gin.Context) {
	var req ExplodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	start, err := services.ParseDate(req.StartDate)
	if err != nil {
		resp.BadRequest(c, "startDate must be YYYY-MM-DD")
		return
	}
	end, err := services.ParseDate(req.EndDate)
	if err != nil {
		resp.BadRequest(c, "endDate must be YYYY-MM-DD")
		return
	}

	result, err := ctl.Quebrados.GenerateFromSchedule(req.CafeID, start, end, req.Notes)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDateRange) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, result)
}
