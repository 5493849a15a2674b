package configs

import (
	"path/filepath"
	"testing"

	"github.com/lindltaylor7/monoessam/entity"
)

func TestSetupDatabaseMigrates(t *testing.T) {
	cfg := &Config{
		DBDriver: "sqlite",
		DBSource: filepath.Join(t.TempDir(), "test.db"),
	}
	ConnectionDB(cfg)

	if err := SetupDatabase(); err != nil {
		t.Fatalf("SetupDatabase: %v", err)
	}

	// schema is usable after migration
	if err := DB().Create(&entity.Cafe{Name: "Comedor Central"}).Error; err != nil {
		t.Fatalf("insert after migrate: %v", err)
	}

	if err := SeedLookups(); err != nil {
		t.Fatalf("SeedLookups: %v", err)
	}
	var units int64
	DB().Model(&entity.MeasurementUnit{}).Count(&units)
	if units == 0 {
		t.Fatal("no measurement units seeded")
	}
}
