package entity

import (
	"gorm.io/gorm"
)

// Dosification holds nutritional values per 100 g of an ingredient.
type Dosification struct {
	gorm.Model
	IngredientID uint `gorm:"uniqueIndex" json:"ingredientId"`

	Energy  float64 `json:"energy"` // kcal
	Protein float64 `json:"protein"`
	Lipid   float64 `json:"lipid"`
}
