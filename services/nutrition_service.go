package services

import (
	"errors"
	"math"

	"github.com/lindltaylor7/monoessam/repository"

	"gorm.io/gorm"
)

// NutritionService computes per-dish nutritional totals from the recipe
// and the per-100g dosification of each ingredient. Unlike the purchase
// explosion, this normalizes quantities to grams via the unit conversion
// factor.
type NutritionService struct {
	Catalog *repository.CatalogRepository
}

func NewNutritionService(catalog *repository.CatalogRepository) *NutritionService {
	return &NutritionService{Catalog: catalog}
}

type DishNutrition struct {
	Calories     float64 `json:"calories"`
	Proteins     float64 `json:"proteins"`
	Lipids       float64 `json:"lipids"`
	TotalWeightG float64 `json:"totalWeightG"`
}

func (s *NutritionService) ForDish(dishID uint) (*DishNutrition, error) {
	dish, err := s.Catalog.GetDishForNutrition(dishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDishNotFound
		}
		return nil, err
	}

	var n DishNutrition
	for _, line := range dish.Recipes {
		dos := line.Ingredient.Dosification
		if dos == nil {
			continue // ingredient not dosified yet
		}

		grams, _ := line.Quantity.Float64()
		if line.Unit.ConversionFactor != nil {
			grams *= *line.Unit.ConversionFactor
		}

		// dosification values are per 100 g
		f := grams / 100
		n.Calories += dos.Energy * f
		n.Proteins += dos.Protein * f
		n.Lipids += dos.Lipid * f
		n.TotalWeightG += grams
	}

	n.Calories = round2(n.Calories)
	n.Proteins = round2(n.Proteins)
	n.Lipids = round2(n.Lipids)
	n.TotalWeightG = round2(n.TotalWeightG)
	return &n, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
