package entity

import (
	"gorm.io/gorm"
)

type Dish struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`

	DishCategoryID uint         `json:"dishCategoryId"`
	DishCategory   DishCategory `json:"-"` // preload only for detail

	Recipes []Recipe `json:"-"` // preload when expanding or editing the recipe
}
