package services

import (
	"errors"
	"testing"

	"github.com/lindltaylor7/monoessam/entity"
	"github.com/lindltaylor7/monoessam/repository"

	"gorm.io/gorm"
)

func newPrograms(db *gorm.DB) *ProgramService {
	return NewProgramService(db, repository.NewProgramRepository(db))
}

func TestProgramCreateAndDetail(t *testing.T) {
	db := newTestDB(t)
	svc := newPrograms(db)

	cafe := seedCafe(t, db)
	kg := seedUnit(t, db, "Kilogramo", "KG", nil)
	rice := seedIngredient(t, db, "Rice", nil)
	dish := seedDish(t, db, "Arroz", entity.Recipe{
		IngredientID: rice.ID, Quantity: dec("0.15"), UnitID: kg.ID,
	})

	program, err := svc.Create(&CreateProgramReq{
		CafeID:    cafe.ID,
		StartDate: "2024-01-01",
		EndDate:   "2024-01-07",
		PlannedBy: "chef",
		Items: []ProgramItemIn{
			{Date: "2024-01-01", MealType: entity.MealLunch, DishID: dish.ID},
			{Date: "2024-01-02", MealType: entity.MealLunch, DishID: dish.ID},
		},
		Portions: []PortionIn{
			{Date: "2024-01-01", MealType: entity.MealLunch, PortionsCount: 50},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if program.Status != entity.ProgramDraft {
		t.Errorf("status = %q, want borrador", program.Status)
	}

	detail, err := svc.Detail(program.ID)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if len(detail.Items) != 2 {
		t.Errorf("items = %d, want 2", len(detail.Items))
	}
	if len(detail.Portions) != 1 {
		t.Errorf("portions = %d, want 1", len(detail.Portions))
	}
	// recipes come preloaded for the explosion
	if len(detail.Items[0].Dish.Recipes) != 1 {
		t.Errorf("dish recipes not preloaded")
	}
}

func TestProgramCreate_InvalidRange(t *testing.T) {
	db := newTestDB(t)
	svc := newPrograms(db)
	cafe := seedCafe(t, db)

	_, err := svc.Create(&CreateProgramReq{
		CafeID:    cafe.ID,
		StartDate: "2024-01-07",
		EndDate:   "2024-01-01",
	})
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("err = %v, want ErrInvalidDateRange", err)
	}
}

func TestProgramCreate_BadItemDateRollsBack(t *testing.T) {
	db := newTestDB(t)
	svc := newPrograms(db)
	cafe := seedCafe(t, db)

	_, err := svc.Create(&CreateProgramReq{
		CafeID:    cafe.ID,
		StartDate: "2024-01-01",
		EndDate:   "2024-01-07",
		Items: []ProgramItemIn{
			{Date: "not-a-date", MealType: entity.MealLunch, DishID: 1},
		},
	})
	if err == nil {
		t.Fatal("expected error")
	}

	var count int64
	db.Model(&entity.WeeklyProgram{}).Count(&count)
	if count != 0 {
		t.Fatalf("program header survived rollback")
	}
}

func TestProgramSetPortionUpserts(t *testing.T) {
	db := newTestDB(t)
	svc := newPrograms(db)
	cafe := seedCafe(t, db)
	program := seedProgram(t, db, cafe.ID, "2024-01-01", "2024-01-07")

	in := PortionIn{Date: "2024-01-01", MealType: entity.MealLunch, PortionsCount: 40}
	if err := svc.SetPortion(program.ID, &in); err != nil {
		t.Fatalf("SetPortion insert: %v", err)
	}
	in.PortionsCount = 55
	if err := svc.SetPortion(program.ID, &in); err != nil {
		t.Fatalf("SetPortion update: %v", err)
	}

	var portions []entity.DailyPortion
	db.Where("weekly_program_id = ?", program.ID).Find(&portions)
	if len(portions) != 1 {
		t.Fatalf("portions = %d, want 1 upserted row", len(portions))
	}
	if portions[0].PortionsCount != 55 {
		t.Errorf("count = %d, want 55", portions[0].PortionsCount)
	}
}

func TestProgramApprove(t *testing.T) {
	db := newTestDB(t)
	svc := newPrograms(db)
	cafe := seedCafe(t, db)
	program := seedProgram(t, db, cafe.ID, "2024-01-01", "2024-01-07")

	approved, err := svc.Approve(program.ID)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if !approved {
		t.Error("approved = false on a draft program")
	}
	reloaded, err := svc.Programs.GetProgram(program.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Status != entity.ProgramApproved {
		t.Errorf("status = %q, want aprobado", reloaded.Status)
	}

	// approving again is not an error, but reports no change
	approved, err = svc.Approve(program.ID)
	if err != nil {
		t.Fatalf("second Approve: %v", err)
	}
	if approved {
		t.Error("approved = true on an already-approved program")
	}

	if _, err := svc.Approve(9999); !errors.Is(err, ErrProgramNotFound) {
		t.Fatalf("err = %v, want ErrProgramNotFound", err)
	}
}
