package account

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/hyeonwoo/placepick/internal/model"
	"github.com/hyeonwoo/placepick/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepository(t *testing.T) *repository.Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
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
	))

	return repository.NewRepository(db, nil)
}

func futureTime() time.Time {
	return time.Now().Add(time.Hour)
}
