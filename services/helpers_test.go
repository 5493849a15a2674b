package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lindltaylor7/monoessam/entity"
	"github.com/lindltaylor7/monoessam/repository"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database per test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&entity.Cafe{},
		&entity.MeasurementUnit{},
		&entity.DishCategory{}, &entity.MenuStructure{},
		&entity.Ingredient{}, &entity.Dosification{},
		&entity.Dish{}, &entity.Recipe{},
		&entity.WeeklyProgram{}, &entity.WeeklyProgramItem{}, &entity.DailyPortion{},
		&entity.PurchaseOrder{}, &entity.PurchaseOrderItem{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newQuebrados(db *gorm.DB) *QuebradosService {
	return NewQuebradosService(db,
		repository.NewProgramRepository(db),
		repository.NewPurchaseOrderRepository(db))
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// ---------------- fixtures ----------------

func seedCafe(t *testing.T, db *gorm.DB) entity.Cafe {
	t.Helper()
	cafe := entity.Cafe{Name: "Comedor Central"}
	if err := db.Create(&cafe).Error; err != nil {
		t.Fatalf("seed cafe: %v", err)
	}
	return cafe
}

func seedUnit(t *testing.T, db *gorm.DB, name, abbr string, factor *float64) entity.MeasurementUnit {
	t.Helper()
	u := entity.MeasurementUnit{Name: name, Abbreviation: abbr, ConversionFactor: factor}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed unit %s: %v", abbr, err)
	}
	return u
}

func seedIngredient(t *testing.T, db *gorm.DB, name string, cost *decimal.Decimal) entity.Ingredient {
	t.Helper()
	ing := entity.Ingredient{Name: name, Cost: cost}
	if err := db.Create(&ing).Error; err != nil {
		t.Fatalf("seed ingredient %s: %v", name, err)
	}
	return ing
}

func seedDish(t *testing.T, db *gorm.DB, name string, lines ...entity.Recipe) entity.Dish {
	t.Helper()
	dish := entity.Dish{Name: name}
	if err := db.Create(&dish).Error; err != nil {
		t.Fatalf("seed dish %s: %v", name, err)
	}
	for i := range lines {
		lines[i].DishID = dish.ID
		if lines[i].YieldFactor.IsZero() {
			lines[i].YieldFactor = decimal.NewFromInt(1)
		}
		if err := db.Create(&lines[i]).Error; err != nil {
			t.Fatalf("seed recipe line for %s: %v", name, err)
		}
	}
	return dish
}

func seedProgram(t *testing.T, db *gorm.DB, cafeID uint, start, end string) entity.WeeklyProgram {
	t.Helper()
	p := entity.WeeklyProgram{
		CafeID:    cafeID,
		StartDate: date(t, start),
		EndDate:   date(t, end),
		Status:    entity.ProgramDraft,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed program: %v", err)
	}
	return p
}

func seedItem(t *testing.T, db *gorm.DB, programID uint, day, meal string, dishID uint) {
	t.Helper()
	it := entity.WeeklyProgramItem{
		WeeklyProgramID: programID,
		Date:            date(t, day),
		MealType:        meal,
		DishID:          dishID,
	}
	if err := db.Create(&it).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}
}

func seedPortion(t *testing.T, db *gorm.DB, programID uint, day, meal string, count int) {
	t.Helper()
	dp := entity.DailyPortion{
		WeeklyProgramID: programID,
		Date:            date(t, day),
		MealType:        meal,
		PortionsCount:   count,
	}
	if err := db.Create(&dp).Error; err != nil {
		t.Fatalf("seed portion: %v", err)
	}
}
