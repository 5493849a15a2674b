package controllers

import (
	"errors"
	"strconv"

	"github.com/lindltaylor7/monoessam/entity"
	"github.com/lindltaylor7/monoessam/pkg/resp"
	"github.com/lindltaylor7/monoessam/repository"
	"github.com/lindltaylor7/monoessam/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DishController struct {
	DB        *gorm.DB
	Catalog   *repository.CatalogRepository
	Nutrition *services.NutritionService
}

func NewDishController(db *gorm.DB, catalog *repository.CatalogRepository, nutrition *services.NutritionService) *DishController {
	return &DishController{DB: db, Catalog: catalog, Nutrition: nutrition}
}

// GET /dishes
func (ctl *DishController) List(c *gin.Context) {
	var dishes []entity.Dish
	if err := ctl.DB.Order("name").Find(&dishes).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, dishes)
}

type CreateDishReq struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	DishCategoryID uint   `json:"dishCategoryId"`
}

// POST /dishes
func (ctl *DishController) Create(c *gin.Context) {
	var req CreateDishReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	dish := entity.Dish{Name: req.Name, Description: req.Description, DishCategoryID: req.DishCategoryID}
	if err := ctl.DB.Create(&dish).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, dish)
}

// GET /dishes/:id → dish with its recipe lines
func (ctl *DishController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var dish entity.Dish
	err := ctl.DB.
		Preload("DishCategory").
		Preload("Recipes").
		Preload("Recipes.Unit").
		Preload("Recipes.Ingredient").
		First(&dish, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "dish not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"dish": dish, "recipes": dish.Recipes})
}

type RecipeLineIn struct {
	IngredientID uint             `json:"ingredientId" binding:"required"`
	Quantity     decimal.Decimal  `json:"quantity" binding:"required"`
	UnitID       uint             `json:"unitId" binding:"required"`
	YieldFactor  decimal.Decimal  `json:"yieldFactor"`
	UnitCost     *decimal.Decimal `json:"unitCost"`
	Notes        string           `json:"notes"`
}

// PUT /dishes/:id/recipes → replace the full recipe of a dish
func (ctl *DishController) SetRecipes(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	dishID := uint(id)

	var in []RecipeLineIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ok, err := ctl.Catalog.DishExists(dishID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !ok {
		resp.NotFound(c, "dish not found")
		return
	}

	seen := map[uint]bool{}
	lines := make([]entity.Recipe, 0, len(in))
	for _, l := range in {
		if !l.Quantity.IsPositive() {
			resp.BadRequest(c, "quantity must be positive")
			return
		}
		if seen[l.IngredientID] {
			resp.BadRequest(c, "duplicate ingredient in recipe")
			return
		}
		seen[l.IngredientID] = true

		if ok, err := ctl.Catalog.IngredientExists(l.IngredientID); err != nil || !ok {
			if err != nil {
				resp.ServerError(c, err)
				return
			}
			resp.BadRequest(c, "ingredient not found")
			return
		}
		if ok, err := ctl.Catalog.UnitExists(l.UnitID); err != nil || !ok {
			if err != nil {
				resp.ServerError(c, err)
				return
			}
			resp.BadRequest(c, "unit not found")
			return
		}

		yield := l.YieldFactor
		if yield.IsZero() {
			yield = decimal.NewFromInt(1)
		}
		lines = append(lines, entity.Recipe{
			IngredientID: l.IngredientID,
			Quantity:     l.Quantity,
			UnitID:       l.UnitID,
			YieldFactor:  yield,
			UnitCost:     l.UnitCost,
			Notes:        l.Notes,
		})
	}

	if err := ctl.Catalog.ReplaceDishRecipes(dishID, lines); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"lines": len(lines)})
}

// GET /dishes/:id/nutrition
func (ctl *DishController) NutritionDetail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	n, err := ctl.Nutrition.ForDish(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrDishNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, n)
}

// ---------------- Dish categories ----------------

// GET /dish-categories
func (ctl *DishController) ListCategories(c *gin.Context) {
	var categories []entity.DishCategory
	if err := ctl.DB.Order("name").Find(&categories).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, categories)
}

// POST /dish-categories
func (ctl *DishController) CreateCategory(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat := entity.DishCategory{Name: req.Name}
	if err := ctl.DB.Create(&cat).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}
