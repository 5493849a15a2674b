package entity

import (
	"gorm.io/gorm"
)

// Purchase order status
const (
	OrderDraft   = "borrador"
	OrderPending = "pendiente"
	OrderSent    = "enviada"
)

// PurchaseOrder is the consolidated requirement snapshot produced by the
// quebrados explosion. Once created it is never mutated; regenerating a
// program simply adds another order.
type PurchaseOrder struct {
	gorm.Model

	// external reference handed to providers
	Code string `gorm:"uniqueIndex" json:"code"`

	// nil for ad hoc orders generated straight from the schedule
	WeeklyProgramID *uint          `json:"weeklyProgramId"`
	WeeklyProgram   *WeeklyProgram `json:"-"`

	CafeID uint `json:"cafeId"`
	Cafe   Cafe `json:"-"`

	Status string `gorm:"default:pendiente" json:"status"`
	Notes  string `json:"notes"`

	Items []PurchaseOrderItem `json:"items"`
}
