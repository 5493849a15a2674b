package entity

import (
	"gorm.io/gorm"
)

type MeasurementUnit struct {
	gorm.Model
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`

	// multiplier to grams; nil for count units (UN) with no weight equivalent
	ConversionFactor *float64 `json:"conversionFactor"`

	Recipes []Recipe `gorm:"foreignKey:UnitID" json:"-"`
}
