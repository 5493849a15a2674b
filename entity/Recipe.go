package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Recipe is one ingredient line of a dish: the net quantity needed
// per portion, in the unit the kitchen measures it with.
type Recipe struct {
	gorm.Model

	DishID uint `gorm:"uniqueIndex:idx_recipe_dish_ingredient" json:"dishId"`
	Dish   Dish `json:"-"`

	IngredientID uint       `gorm:"uniqueIndex:idx_recipe_dish_ingredient" json:"ingredientId"`
	Ingredient   Ingredient `json:"-"`

	Quantity decimal.Decimal `gorm:"type:decimal(8,4)" json:"quantity"`

	UnitID uint            `json:"unitId"`
	Unit   MeasurementUnit `gorm:"foreignKey:UnitID" json:"-"`

	// usable fraction after trimming/cooking loss (mermas); 1.00 = no loss
	YieldFactor decimal.Decimal `gorm:"type:decimal(5,2);default:1.00" json:"yieldFactor"`

	// per-line cost override; falls back to the ingredient standing cost
	UnitCost *decimal.Decimal `gorm:"type:decimal(14,4)" json:"unitCost"`

	Notes string `json:"notes"`
}
