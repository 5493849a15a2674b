package controllers

import (
	"errors"
	"strconv"

	"github.com/lindltaylor7/monoessam/entity"
	"github.com/lindltaylor7/monoessam/pkg/resp"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CatalogController covers the small lookup surfaces: cafes,
// measurement units and menu structures.
type CatalogController struct {
	DB *gorm.DB
}

func NewCatalogController(db *gorm.DB) *CatalogController {
	return &CatalogController{DB: db}
}

// ---------------- Cafes ----------------

// GET /cafes
func (ctl *CatalogController) ListCafes(c *gin.Context) {
	var cafes []entity.Cafe
	if err := ctl.DB.Order("name").Find(&cafes).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cafes)
}

// POST /cafes
func (ctl *CatalogController) CreateCafe(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Location string `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cafe := entity.Cafe{Name: req.Name, Location: req.Location}
	if err := ctl.DB.Create(&cafe).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cafe)
}

// GET /cafes/:id
func (ctl *CatalogController) CafeDetail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var cafe entity.Cafe
	if err := ctl.DB.First(&cafe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "cafe not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cafe)
}

// ---------------- Measurement units ----------------

// GET /units
func (ctl *CatalogController) ListUnits(c *gin.Context) {
	var units []entity.MeasurementUnit
	if err := ctl.DB.Order("abbreviation").Find(&units).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, units)
}

// POST /units
func (ctl *CatalogController) CreateUnit(c *gin.Context) {
	var req struct {
		Name             string   `json:"name" binding:"required"`
		Abbreviation     string   `json:"abbreviation" binding:"required"`
		ConversionFactor *float64 `json:"conversionFactor"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	unit := entity.MeasurementUnit{
		Name:             req.Name,
		Abbreviation:     req.Abbreviation,
		ConversionFactor: req.ConversionFactor,
	}
	if err := ctl.DB.Create(&unit).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, unit)
}

// ---------------- Menu structures ----------------

// GET /menu-structures?mealType=almuerzo
func (ctl *CatalogController) ListMenuStructures(c *gin.Context) {
	q := ctl.DB.Preload("DishCategory").Order("meal_type, sort_order")
	if mt := c.Query("mealType"); mt != "" {
		q = q.Where("meal_type = ?", mt)
	}

	var structures []entity.MenuStructure
	if err := q.Find(&structures).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, structures)
}

// POST /menu-structures
func (ctl *CatalogController) CreateMenuStructure(c *gin.Context) {
	var req struct {
		MealType       string          `json:"mealType" binding:"required"`
		DishCategoryID uint            `json:"dishCategoryId" binding:"required"`
		SortOrder      int             `json:"sortOrder"`
		CostPercentage decimal.Decimal `json:"costPercentage"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ms := entity.MenuStructure{
		MealType:       req.MealType,
		DishCategoryID: req.DishCategoryID,
		SortOrder:      req.SortOrder,
		CostPercentage: req.CostPercentage,
	}
	if err := ctl.DB.Create(&ms).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, ms)
}
