package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Ingredient struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`

	// standing cost per recipe unit; nil while purchasing has no reference price
	Cost *decimal.Decimal `gorm:"type:decimal(14,4)" json:"cost"`

	// typical waste percentage, informational for the catalog
	Waste decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"waste"`

	Dosification *Dosification `json:"-"` // preload for nutrition only
	Recipes      []Recipe      `json:"-"`
}
