package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hyeonwoo/placepick/internal/config"
	"github.com/hyeonwoo/placepick/internal/database"
	"github.com/hyeonwoo/placepick/internal/env"
	"github.com/hyeonwoo/placepick/internal/mailer"
	"github.com/hyeonwoo/placepick/internal/queue"
	"github.com/hyeonwoo/placepick/internal/repository"
	"github.com/hyeonwoo/placepick/internal/util"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

const (
	MAX_WORKER = 3
)

func main() {
	cfg := config.GetConfig()
	logger := util.NewLogger(cfg.ENV)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		logger.Panic(err)
	}
	defer sqlDb.Close()
	logger.Info("Database connected \n")

	mail := mailer.NewSendgrid(cfg.Mail.SEND_GRID.API_KEY, cfg.Mail.FROM_EMAIL, cfg.IsProduction(), logger)
	repo := repository.NewRepository(db, logger)
	app := queue.MailConsumerContext{
		Config:     &cfg,
		Repository: repo,
		Logger:     logger,
		Mailer:     mail,
	}

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQ.GetConnectionString())
	if err != nil {
		logger.Panic("Error connecting to RabbitMQ: ", err)
	}
	logger.Info("RabbitMQ connected \n")
	defer func() {
		if err := rabbitMQ.Close(); err != nil {
			logger.Errorf("Failed to close RabbitMQ connection: %v", err)
		}
	}()

	ctx := context.Background()

	if err := rabbitMQ.ConsumeMailJob(ctx, mailJobHandler, MAX_WORKER, &app); err != nil {
		logger.Fatalf("Failed to consume mail job: %v", err)
	}

	logger.Infof("Started consuming mail job")

	// Block forever to keep the consumer running
	select {}
}

func mailJobHandler(ctx context.Context, jobPayload queue.MailJobPayload, app *queue.MailConsumerContext) (bool, error) {
	switch jobPayload.TemplateFile {
	case mailer.TemplateAccountDeleted:
		var data mailer.AccountDeletedData
		if err := json.Unmarshal(jobPayload.Data, &data); err != nil {
			return false, fmt.Errorf("failed to unmarshal AccountDeletedData: %w", err)
		}

		// The account row is gone by the time this job runs, so the payload
		// itself is the source of truth for the recipient.
		if data.Email != jobPayload.ToEmail {
			return false, fmt.Errorf("email %s does not match payload email %s", jobPayload.ToEmail, data.Email)
		}

		status, err := app.Mailer.Send(jobPayload.TemplateFile, jobPayload.ToUsername, jobPayload.ToEmail, data)
		if err != nil {
			return true, fmt.Errorf("failed to send email: %w", err)
		}

		if status >= http.StatusMultipleChoices {
			return true, fmt.Errorf("email sending failed with status: %d", status)
		}

		return true, nil
	default:
		return false, fmt.Errorf("unsupported template: %s", jobPayload.TemplateFile)
	}
}
