package entity

import (
	"gorm.io/gorm"
)

type Cafe struct {
	gorm.Model
	Name     string `json:"name"`
	Location string `json:"location"`

	// hide heavy relations from list responses
	WeeklyPrograms []WeeklyProgram `json:"-"`
	PurchaseOrders []PurchaseOrder `json:"-"`
}
