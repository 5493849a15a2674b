package configs

import (
	"github.com/lindltaylor7/monoessam/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DBDriver {
	case "postgres":
		database, err = gorm.Open(postgres.Open(cfg.DBSource), &gorm.Config{})
	default:
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	}
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() error {

	// Migrate the schema
	return db.AutoMigrate(
		&entity.Cafe{},
		&entity.MeasurementUnit{},
		&entity.DishCategory{}, &entity.MenuStructure{},
		&entity.Ingredient{}, &entity.Dosification{},
		&entity.Dish{}, &entity.Recipe{},
		&entity.WeeklyProgram{}, &entity.WeeklyProgramItem{}, &entity.DailyPortion{},
		&entity.PurchaseOrder{}, &entity.PurchaseOrderItem{},
	)
}
