package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MenuStructure is the template of what composes each meal,
// e.g. almuerzo = entrada + fondo + postre + bebida.
type MenuStructure struct {
	gorm.Model
	MealType  string `json:"mealType"`
	SortOrder int    `json:"sortOrder"`

	// optional target share of the meal cost for this category
	CostPercentage decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"costPercentage"`

	DishCategoryID uint         `json:"dishCategoryId"`
	DishCategory   DishCategory `json:"-"`
}
