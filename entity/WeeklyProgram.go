package entity

import (
	"time"

	"gorm.io/gorm"
)

// Program status
const (
	ProgramDraft    = "borrador"
	ProgramApproved = "aprobado"
)

// Meal types used across items, portions and menu structures.
const (
	MealBreakfast = "desayuno"
	MealLunch     = "almuerzo"
	MealDinner    = "cena"
	MealSnack     = "refrigerio"
)

type WeeklyProgram struct {
	gorm.Model

	CafeID uint `json:"cafeId"`
	Cafe   Cafe `json:"-"` // preload for order headers

	StartDate time.Time `gorm:"type:date" json:"startDate"`
	EndDate   time.Time `gorm:"type:date" json:"endDate"`

	Status    string `gorm:"default:borrador" json:"status"`
	PlannedBy string `json:"plannedBy"`

	Items    []WeeklyProgramItem `json:"-"` // preload on detail
	Portions []DailyPortion      `json:"-"`

	PurchaseOrders []PurchaseOrder `json:"-"`
}
