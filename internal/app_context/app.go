package appcontext

import (
	"github.com/hyeonwoo/placepick/internal/auth"
	"github.com/hyeonwoo/placepick/internal/config"
	"github.com/hyeonwoo/placepick/internal/mailer"
	"github.com/hyeonwoo/placepick/internal/queue"
	"github.com/hyeonwoo/placepick/internal/repository"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Repository provides access to data storage operations.
	Repository *repository.Repository

	// Mailer handles email-sending functions.
	Mailer mailer.Client

	// SessionService issues, validates and revokes server-persisted sessions.
	SessionService auth.SessionInterface

	S3 *minio.Client

	// Queue is optional; when nil, mail jobs are skipped instead of published.
	Queue *queue.RabbitMQ
}
