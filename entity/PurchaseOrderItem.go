package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PurchaseOrderItem is one consolidated ingredient requirement.
// There is exactly one row per distinct ingredient in an order.
type PurchaseOrderItem struct {
	gorm.Model

	PurchaseOrderID uint          `gorm:"uniqueIndex:idx_order_ingredient" json:"purchaseOrderId"`
	PurchaseOrder   PurchaseOrder `json:"-"`

	IngredientID uint       `gorm:"uniqueIndex:idx_order_ingredient" json:"ingredientId"`
	Ingredient   Ingredient `json:"-"` // preload on order detail

	TotalAmount   decimal.Decimal `gorm:"type:decimal(14,4)" json:"totalAmount"`
	Unit          string          `json:"unit"` // unit of purchase e.g. KG, LT
	EstimatedCost decimal.Decimal `gorm:"type:decimal(14,2)" json:"estimatedCost"`
}
