package entity

import (
	"time"

	"gorm.io/gorm"
)

// WeeklyProgramItem schedules one dish on one date and meal slot.
type WeeklyProgramItem struct {
	gorm.Model

	WeeklyProgramID uint          `json:"weeklyProgramId"`
	WeeklyProgram   WeeklyProgram `json:"-"`

	Date     time.Time `gorm:"type:date" json:"date"`
	MealType string    `json:"mealType"`

	DishCategoryID uint         `json:"dishCategoryId"`
	DishCategory   DishCategory `json:"-"`

	DishID uint `json:"dishId"`
	Dish   Dish `json:"-"` // preload with recipes when exploding
}
