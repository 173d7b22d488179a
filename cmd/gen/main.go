package main

import (
	"regain/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.StreakResetModel{},
		model.AuthenticationModel{},
		model.RefreshTokenModel{},
		model.HabitModel{},
		model.HabitCompletionModel{},
		model.GratitudeModel{},
		model.JournalModel{},
		model.MeditationModel{},
		model.UserDeviceModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
