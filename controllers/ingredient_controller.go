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

type IngredientController struct {
	DB *gorm.DB
}

func NewIngredientController(db *gorm.DB) *IngredientController {
	return &IngredientController{DB: db}
}

// GET /ingredients
func (ctl *IngredientController) List(c *gin.Context) {
	var ingredients []entity.Ingredient
	if err := ctl.DB.Order("name").Find(&ingredients).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, ingredients)
}

type IngredientIn struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Cost        *decimal.Decimal `json:"cost"`
	Waste       decimal.Decimal  `json:"waste"`
}

// POST /ingredients
func (ctl *IngredientController) Create(c *gin.Context) {
	var req IngredientIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ing := entity.Ingredient{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Cost:        req.Cost,
		Waste:       req.Waste,
	}
	if err := ctl.DB.Create(&ing).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, ing)
}

// GET /ingredients/:id → with dosification
func (ctl *IngredientController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var ing entity.Ingredient
	if err := ctl.DB.Preload("Dosification").First(&ing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "ingredient not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ingredient": ing, "dosification": ing.Dosification})
}

// PATCH /ingredients/:id
func (ctl *IngredientController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var ing entity.Ingredient
	if err := ctl.DB.First(&ing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "ingredient not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	var req IngredientIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ing.Name = req.Name
	ing.Description = req.Description
	ing.Category = req.Category
	ing.Cost = req.Cost
	ing.Waste = req.Waste
	if err := ctl.DB.Save(&ing).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, ing)
}

type DosificationIn struct {
	Energy  float64 `json:"energy"`
	Protein float64 `json:"protein"`
	Lipid   float64 `json:"lipid"`
}

// PUT /ingredients/:id/dosification → per-100g nutritional values
func (ctl *IngredientController) SetDosification(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	ingID := uint(id)

	var cnt int64
	if err := ctl.DB.Model(&entity.Ingredient{}).Where("id = ?", ingID).Count(&cnt).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if cnt == 0 {
		resp.NotFound(c, "ingredient not found")
		return
	}

	var req DosificationIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := ctl.DB.
		Where(entity.Dosification{IngredientID: ingID}).
		Assign(map[string]any{"energy": req.Energy, "protein": req.Protein, "lipid": req.Lipid}).
		FirstOrCreate(&entity.Dosification{}).Error
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}
