package repository

import (
	"time"

	"github.com/lindltaylor7/monoessam/entity"

	"gorm.io/gorm"
)

type ProgramRepository struct {
	DB *gorm.DB
}

func NewProgramRepository(db *gorm.DB) *ProgramRepository {
	return &ProgramRepository{DB: db}
}

func (r *ProgramRepository) GetProgram(id uint) (*entity.WeeklyProgram, error) {
	var p entity.WeeklyProgram
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProgramsForCafe returns headers only, newest first.
func (r *ProgramRepository) ListProgramsForCafe(cafeID uint, limit int) ([]entity.WeeklyProgram, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entity.WeeklyProgram
	err := r.DB.Where("cafe_id = ?", cafeID).
		Order("id DESC").Limit(limit).
		Find(&out).Error
	return out, err
}

// GetProgramItems loads every scheduled dish of a program with the full
// recipe (lines + units + ingredients) needed for the explosion.
func (r *ProgramRepository) GetProgramItems(programID uint) ([]entity.WeeklyProgramItem, error) {
	var items []entity.WeeklyProgramItem
	err := r.DB.
		Preload("Dish").
		Preload("Dish.Recipes").
		Preload("Dish.Recipes.Unit").
		Preload("Dish.Recipes.Ingredient").
		Where("weekly_program_id = ?", programID).
		Find(&items).Error
	return items, err
}

func (r *ProgramRepository) GetProgramPortions(programID uint) ([]entity.DailyPortion, error) {
	var portions []entity.DailyPortion
	err := r.DB.Where("weekly_program_id = ?", programID).Find(&portions).Error
	return portions, err
}

// ListItemsInRange scans scheduling facts directly for a cafe and date
// window, across programs.
func (r *ProgramRepository) ListItemsInRange(cafeID uint, start, end time.Time) ([]entity.WeeklyProgramItem, error) {
	var items []entity.WeeklyProgramItem
	err := r.DB.
		Preload("Dish").
		Preload("Dish.Recipes").
		Preload("Dish.Recipes.Unit").
		Preload("Dish.Recipes.Ingredient").
		Joins("JOIN weekly_programs p ON p.id = weekly_program_items.weekly_program_id AND p.deleted_at IS NULL").
		Where("p.cafe_id = ? AND weekly_program_items.date BETWEEN ? AND ?", cafeID, start, end).
		Find(&items).Error
	return items, err
}

func (r *ProgramRepository) ListPortionsInRange(cafeID uint, start, end time.Time) ([]entity.DailyPortion, error) {
	var portions []entity.DailyPortion
	err := r.DB.
		Joins("JOIN weekly_programs p ON p.id = daily_portions.weekly_program_id AND p.deleted_at IS NULL").
		Where("p.cafe_id = ? AND daily_portions.date BETWEEN ? AND ?", cafeID, start, end).
		Find(&portions).Error
	return portions, err
}

// ---------------- Writes (planning workflow) ----------------

func (r *ProgramRepository) CreateProgram(tx *gorm.DB, p *entity.WeeklyProgram) error {
	return tx.Create(p).Error
}

func (r *ProgramRepository) CreateItem(tx *gorm.DB, it *entity.WeeklyProgramItem) error {
	return tx.Create(it).Error
}

func (r *ProgramRepository) CreatePortion(tx *gorm.DB, dp *entity.DailyPortion) error {
	return tx.Create(dp).Error
}

// UpsertPortion sets the forecast headcount for one date and meal slot.
func (r *ProgramRepository) UpsertPortion(programID uint, date time.Time, mealType string, count int) error {
	return r.DB.
		Where(entity.DailyPortion{WeeklyProgramID: programID, Date: date, MealType: mealType}).
		Assign(map[string]any{"portions_count": count}).
		FirstOrCreate(&entity.DailyPortion{}).Error
}

// ApproveProgram flips borrador → aprobado; reports whether a row changed.
func (r *ProgramRepository) ApproveProgram(programID uint) (bool, error) {
	res := r.DB.Model(&entity.WeeklyProgram{}).
		Where("id = ? AND status = ?", programID, entity.ProgramDraft).
		Update("status", entity.ProgramApproved)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
