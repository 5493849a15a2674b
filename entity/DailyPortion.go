package entity

import (
	"time"

	"gorm.io/gorm"
)

// DailyPortion is the forecast headcount for one date and meal slot.
type DailyPortion struct {
	gorm.Model

	WeeklyProgramID uint          `json:"weeklyProgramId"`
	WeeklyProgram   WeeklyProgram `json:"-"`

	Date          time.Time `gorm:"type:date" json:"date"`
	MealType      string    `json:"mealType"`
	PortionsCount int       `json:"portionsCount"`
}
