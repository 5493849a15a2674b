package services

import (
	"errors"
	"math"
	"testing"

	"github.com/lindltaylor7/monoessam/entity"
	"github.com/lindltaylor7/monoessam/repository"

	"gorm.io/gorm"
)

func newNutrition(db *gorm.DB) *NutritionService {
	return NewNutritionService(repository.NewCatalogRepository(db))
}

func seedDosification(t *testing.T, db *gorm.DB, ingredientID uint, energy, protein, lipid float64) {
	t.Helper()
	d := entity.Dosification{IngredientID: ingredientID, Energy: energy, Protein: protein, Lipid: lipid}
	if err := db.Create(&d).Error; err != nil {
		t.Fatalf("seed dosification: %v", err)
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNutrition_ForDish(t *testing.T) {
	db := newTestDB(t)
	svc := newNutrition(db)

	f := 1000.0
	kg := seedUnit(t, db, "Kilogramo", "KG", &f)
	rice := seedIngredient(t, db, "Rice", nil)
	seedDosification(t, db, rice.ID, 130, 2.7, 0.3) // per 100 g

	dish := seedDish(t, db, "Arroz", entity.Recipe{
		IngredientID: rice.ID, Quantity: dec("0.15"), UnitID: kg.ID,
	})

	n, err := svc.ForDish(dish.ID)
	if err != nil {
		t.Fatalf("ForDish: %v", err)
	}

	// 0.15 kg = 150 g → factor 1.5
	if !almostEqual(n.TotalWeightG, 150) {
		t.Errorf("weight = %v, want 150", n.TotalWeightG)
	}
	if !almostEqual(n.Calories, 195) {
		t.Errorf("calories = %v, want 195", n.Calories)
	}
	if !almostEqual(n.Proteins, 4.05) {
		t.Errorf("proteins = %v, want 4.05", n.Proteins)
	}
	if !almostEqual(n.Lipids, 0.45) {
		t.Errorf("lipids = %v, want 0.45", n.Lipids)
	}
}

func TestNutrition_SkipsUndosifiedIngredients(t *testing.T) {
	db := newTestDB(t)
	svc := newNutrition(db)

	f := 1.0
	gr := seedUnit(t, db, "Gramo", "GR", &f)
	salt := seedIngredient(t, db, "Salt", nil) // no dosification

	dish := seedDish(t, db, "Sopa", entity.Recipe{
		IngredientID: salt.ID, Quantity: dec("5"), UnitID: gr.ID,
	})

	n, err := svc.ForDish(dish.ID)
	if err != nil {
		t.Fatalf("ForDish: %v", err)
	}
	if n.Calories != 0 || n.TotalWeightG != 0 {
		t.Errorf("undosified ingredient contributed: %+v", n)
	}
}

func TestNutrition_CountUnitDefaultsToGrams(t *testing.T) {
	db := newTestDB(t)
	svc := newNutrition(db)

	un := seedUnit(t, db, "Unidad", "UN", nil) // no conversion factor
	egg := seedIngredient(t, db, "Egg", nil)
	seedDosification(t, db, egg.ID, 155, 13, 11)

	dish := seedDish(t, db, "Huevo", entity.Recipe{
		IngredientID: egg.ID, Quantity: dec("50"), UnitID: un.ID,
	})

	n, err := svc.ForDish(dish.ID)
	if err != nil {
		t.Fatalf("ForDish: %v", err)
	}
	if !almostEqual(n.Calories, 77.5) {
		t.Errorf("calories = %v, want 77.5", n.Calories)
	}
}

func TestNutrition_MissingDish(t *testing.T) {
	db := newTestDB(t)
	svc := newNutrition(db)

	_, err := svc.ForDish(404)
	if !errors.Is(err, ErrDishNotFound) {
		t.Fatalf("err = %v, want ErrDishNotFound", err)
	}
}
