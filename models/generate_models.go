package models

import (
	"fmt"

	"gorm.io/gen"
	"gorm.io/gorm"
)

/*
Query helper generation:

Set GENERATE_MODELS=true and run the server binary. Tables are migrated first, then typed
query helpers for every model are written to ./generated (or GENERATE_OUT_PATH).
*/

// All returns every persisted model in migration order.
func All() []any {
	return []any{
		&User{},
		&Client{},
		&Project{},
		&Message{},
		&FileUpload{},
		&SRSDocument{},
		&Booking{},
	}
}

// GenerateModels writes gorm/gen query helpers for all models.
func GenerateModels(db *gorm.DB, outPath string) error {
	if err := db.Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("database not ready: %w", err)
	}
	if outPath == "" {
		outPath = "./generated"
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:           outPath,
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(db)

	g.ApplyBasic(
		User{},
		Client{},
		Project{},
		Message{},
		FileUpload{},
		SRSDocument{},
		Booking{},
	)

	g.Execute()
	return nil
}
