package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/hyeonwoo/placepick/internal/env"
)

type Config struct {
	Port        string
	ENV         string
	FrontURL    string
	DB          DatabaseConfig
	RateLimiter RateLimiterConfig
	Auth        AuthConfig
	Minio       MinioConfig
	RabbitMQ    RabbitMQConfig
	Mail        MailConfig
}

type RateLimiterConfig struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

type AuthConfig struct {
	Google OAuthProviderConfig
	Kakao  OAuthProviderConfig
	Naver  OAuthProviderConfig
}

type OAuthProviderConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type DatabaseConfig struct {
	DB_HOST      string
	DB_PORT      string
	DB_DATABASE  string
	DB_USERNAME  string
	DB_PASSWORD  string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  string
}

type MinioConfig struct {
	ENDPOINT   string
	ACCESS_KEY string
	SECRET_KEY string
	USE_SSL    bool
	BUCKET     string
}

type RabbitMQConfig struct {
	HOST     string
	PORT     string
	USERNAME string
	PASSWORD string
}

func (r RabbitMQConfig) GetConnectionString() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", r.USERNAME, r.PASSWORD, r.HOST, r.PORT)
}

type MailConfig struct {
	SEND_GRID  SendGridConfig
	FROM_EMAIL string
}

type SendGridConfig struct {
	API_KEY string
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.ENV, "production")
}

func GetConfig() Config {
	rateLimiteTimeFrame, err := time.ParseDuration(env.GetString("RATE_LIMIT_TIME_FRAME", "1m"))
	if err != nil {
		rateLimiteTimeFrame = 60 * time.Second
	}

	return Config{
		Port:     env.GetString("PORT", "8080"),
		ENV:      env.GetString("ENV", "development"),
		FrontURL: env.GetString("FRONT_URL", "http://localhost:3000"),
		DB: DatabaseConfig{
			DB_HOST:      env.GetString("DB_HOST", "127.0.0.1"),
			DB_PORT:      env.GetString("DB_PORT", "5432"),
			DB_USERNAME:  env.GetString("DB_USERNAME", "root"),
			DB_PASSWORD:  env.GetString("DB_PASSWORD", ""),
			DB_DATABASE:  env.GetString("DB_DATABASE", "placepick"),
			MaxOpenConns: env.GetInt("DB_MAX_OPEN_CONNS", 30),
			MaxIdleConns: env.GetInt("DB_MAX_IDLE_CONNS", 30),
			MaxIdleTime:  env.GetString("DB_MAX_IDLE_TIME", "15m"),
		},
		// By default if not specified, we allow 5000 requests per minute on all routes
		RateLimiter: RateLimiterConfig{
			RequestsPerTimeFrame: env.GetInt("RATE_LIMIT_REQUESTS_PER_TIME_FRAME", 5000),
			TimeFrame:            rateLimiteTimeFrame,
			Enabled:              env.GetBool("RATE_LIMIT_ENABLED", true),
		},
		Auth: AuthConfig{
			Google: OAuthProviderConfig{
				ClientID:     env.GetString("GOOGLE_OAUTH_CLIENT_ID", ""),
				ClientSecret: env.GetString("GOOGLE_OAUTH_CLIENT_SECRET", ""),
				RedirectURL:  env.GetString("GOOGLE_OAUTH_CALLBACK", "http://localhost:8080/api/v1/oauth/google/callback"),
			},
			Kakao: OAuthProviderConfig{
				ClientID:     env.GetString("KAKAO_OAUTH_CLIENT_ID", ""),
				ClientSecret: env.GetString("KAKAO_OAUTH_CLIENT_SECRET", ""),
				RedirectURL:  env.GetString("KAKAO_OAUTH_CALLBACK", "http://localhost:8080/api/v1/oauth/kakao/callback"),
			},
			Naver: OAuthProviderConfig{
				ClientID:     env.GetString("NAVER_OAUTH_CLIENT_ID", ""),
				ClientSecret: env.GetString("NAVER_OAUTH_CLIENT_SECRET", ""),
				RedirectURL:  env.GetString("NAVER_OAUTH_CALLBACK", "http://localhost:8080/api/v1/oauth/naver/callback"),
			},
		},
		Minio: MinioConfig{
			ENDPOINT:   env.GetString("MINIO_ENDPOINT", "127.0.0.1:9000"),
			ACCESS_KEY: env.GetString("MINIO_ACCESS_KEY", ""),
			SECRET_KEY: env.GetString("MINIO_SECRET_KEY", ""),
			USE_SSL:    env.GetBool("MINIO_USE_SSL", false),
			BUCKET:     env.GetString("MINIO_BUCKET", "placepick"),
		},
		RabbitMQ: RabbitMQConfig{
			HOST:     env.GetString("RABBITMQ_HOST", "127.0.0.1"),
			PORT:     env.GetString("RABBITMQ_PORT", "5672"),
			USERNAME: env.GetString("RABBITMQ_USERNAME", "guest"),
			PASSWORD: env.GetString("RABBITMQ_PASSWORD", "guest"),
		},
		Mail: MailConfig{
			FROM_EMAIL: env.GetString("MAIL_FROM_MAIL", ""),
			SEND_GRID: SendGridConfig{
				API_KEY: env.GetString("MAIL_SEND_GRID_API_KEY", ""),
			},
		},
	}
}
