package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	appcontext "github.com/hyeonwoo/placepick/internal/app_context"
	"github.com/hyeonwoo/placepick/internal/auth"
	"github.com/hyeonwoo/placepick/internal/config"
	"github.com/hyeonwoo/placepick/internal/controller"
	"github.com/hyeonwoo/placepick/internal/database"
	"github.com/hyeonwoo/placepick/internal/env"
	filestorage "github.com/hyeonwoo/placepick/internal/file_storage"
	"github.com/hyeonwoo/placepick/internal/mailer"
	"github.com/hyeonwoo/placepick/internal/middleware"
	"github.com/hyeonwoo/placepick/internal/queue"
	ratelimiter "github.com/hyeonwoo/placepick/internal/rate_limiter"
	"github.com/hyeonwoo/placepick/internal/repository"
	"github.com/hyeonwoo/placepick/internal/route"
	"github.com/hyeonwoo/placepick/internal/util"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	logger.Debugf("Configuration: %+v \n", cfg)

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

	s3, err := filestorage.NewMinioClient(&cfg.Minio)
	if err != nil {
		logger.Error("Error connecting to minio")
		logger.Panic(err)
	}

	// Custom validation
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("strNotEmpty", util.StrNotEmpty); err != nil {
			return
		}
	}

	rateLimiter := ratelimiter.NewRateLimiter(cfg.RateLimiter, logger)
	mail := mailer.NewSendgrid(cfg.Mail.SEND_GRID.API_KEY, cfg.Mail.FROM_EMAIL, cfg.IsProduction(), logger)
	repo := repository.NewRepository(db, logger)
	sessionService := auth.NewSessionService(repo, logger)

	// The api can serve without the broker; deletion mails are then skipped.
	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQ.GetConnectionString())
	if err != nil {
		logger.Warnf("RabbitMQ unavailable, mail jobs disabled: %v", err)
		rabbitMQ = nil
	} else {
		defer func() {
			if err := rabbitMQ.Close(); err != nil {
				logger.Errorf("Failed to close RabbitMQ connection: %v", err)
			}
		}()
	}

	app := appcontext.Application{
		Config:         &cfg,
		Repository:     repo,
		Logger:         logger,
		Mailer:         mail,
		SessionService: sessionService,
		S3:             s3,
		Queue:          rabbitMQ,
	}

	_middleware := middleware.NewMiddleware(&app, rateLimiter)

	if cfg.ENV == "production" {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontURL}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept"}
	// Session cookie requires credentialed requests.
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))
	r.Use(_middleware.RateLimiterMiddleware)

	_controller := controller.NewController(&app)

	r.GET("/", _controller.Index.Index)

	rApi := r.Group("/api")

	route.V1_OAuth(rApi, _controller.OAuth)
	route.V1_Auth(rApi, _controller.Auth, _middleware)
	route.V1_Me(rApi, _controller, _middleware)
	route.V1_Users(rApi, _controller.User)
	route.V1_Places(rApi, _controller, _middleware)
	route.V1_Reviews(rApi, _controller.Review, _middleware)
	route.V1_File(rApi, _controller.File, _middleware)

	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panic("Error running server: %v \n", err)
	}
}
