package main

import (
	"github.com/hyeonwoo/placepick/internal/config"
	"github.com/hyeonwoo/placepick/internal/database"
	"github.com/hyeonwoo/placepick/internal/env"
	"github.com/hyeonwoo/placepick/internal/model"
	"go.uber.org/zap"
)

func init() {
	env.LoadEnv()
}

func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()
	cfg := config.GetConfig()

	logger.Infof("Database configuration: %+v", cfg.DB)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	// Case-insensitive emails.
	db.Exec(`CREATE EXTENSION IF NOT EXISTS citext`)

	migrateErr := db.AutoMigrate(
		&model.User{},
		&model.LinkedAccount{},
		&model.Session{},
		&model.Profile{},
		&model.Consent{},
		&model.Place{},
		&model.Vote{},
		&model.Favorite{},
		&model.Review{},
		&model.ReviewReply{},
		&model.Notification{},
	)
	if migrateErr != nil {
		logger.Panic(migrateErr)
	}
}
