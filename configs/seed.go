package configs

import (
	"log"

	"github.com/lindltaylor7/monoessam/entity"
)

func factor(f float64) *float64 { return &f }

// Seed lookup data the kitchen catalog expects to exist.
func SeedLookups() error {
	db := DB()

	// Measurement units; conversion_factor is the multiplier to grams,
	// nil for count-style units that have no weight equivalent.
	db.FirstOrCreate(&entity.MeasurementUnit{}, entity.MeasurementUnit{Name: "Kilogramo", Abbreviation: "KG", ConversionFactor: factor(1000)})
	db.FirstOrCreate(&entity.MeasurementUnit{}, entity.MeasurementUnit{Name: "Gramo", Abbreviation: "GR", ConversionFactor: factor(1)})
	db.FirstOrCreate(&entity.MeasurementUnit{}, entity.MeasurementUnit{Name: "Litro", Abbreviation: "LT", ConversionFactor: factor(1000)})
	db.FirstOrCreate(&entity.MeasurementUnit{}, entity.MeasurementUnit{Name: "Mililitro", Abbreviation: "ML", ConversionFactor: factor(1)})
	db.FirstOrCreate(&entity.MeasurementUnit{}, entity.MeasurementUnit{Name: "Unidad", Abbreviation: "UN"})

	// Dish categories
	db.FirstOrCreate(&entity.DishCategory{}, entity.DishCategory{Name: "Entrada"})
	db.FirstOrCreate(&entity.DishCategory{}, entity.DishCategory{Name: "Fondo"})
	db.FirstOrCreate(&entity.DishCategory{}, entity.DishCategory{Name: "Postre"})
	db.FirstOrCreate(&entity.DishCategory{}, entity.DishCategory{Name: "Bebida"})

	log.Println("lookup tables seeded")
	return nil
}
