package repository

import (
	"github.com/lindltaylor7/monoessam/entity"

	"gorm.io/gorm"
)

// CatalogRepository reads the dish/recipe/ingredient/unit catalog.
type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// GetDishForNutrition loads a dish with recipe lines, units and
// per-100g dosifications.
func (r *CatalogRepository) GetDishForNutrition(dishID uint) (*entity.Dish, error) {
	var d entity.Dish
	err := r.DB.
		Preload("Recipes").
		Preload("Recipes.Unit").
		Preload("Recipes.Ingredient").
		Preload("Recipes.Ingredient.Dosification").
		First(&d, dishID).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *CatalogRepository) DishExists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Dish{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *CatalogRepository) IngredientExists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Ingredient{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *CatalogRepository) UnitExists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.MeasurementUnit{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// ReplaceDishRecipes swaps the full recipe of a dish inside one tx.
func (r *CatalogRepository) ReplaceDishRecipes(dishID uint, lines []entity.Recipe) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("dish_id = ?", dishID).Delete(&entity.Recipe{}).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].DishID = dishID
			if err := tx.Create(&lines[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
