// Command gen regenerates the typed query package for the persistence models.
package main

import (
	"acorn/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.CustomerModel{},
		model.InvoiceModel{},
		model.SessionModel{},
		model.UserModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	g.ApplyBasic(models...)

	g.Execute()
}
