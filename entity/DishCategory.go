package entity

import (
	"gorm.io/gorm"
)

type DishCategory struct {
	gorm.Model
	Name string `json:"name"`

	Dishes         []Dish          `json:"-"`
	MenuStructures []MenuStructure `json:"-"`
}
