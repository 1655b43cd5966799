// Command gen writes typed GORM query helpers for the persistence models.
package main

import (
	"pixelforge/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.SubscriptionModel{},
		model.ImageFileModel{},
		model.ImageManipulationModel{},
		model.SystemEventModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
