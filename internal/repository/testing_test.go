package repository

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/hyeonwoo/placepick/internal/model"
	"github.com/hyeonwoo/placepick/internal/util"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepository(t *testing.T) *Repository {
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

	return NewRepository(db, util.NewLogger(""))
}

func seedUser(t *testing.T, repo *Repository, email string, name string) *model.User {
	t.Helper()

	user, err := repo.User.Create(context.Background(), nil, model.User{Email: email, Name: name})
	require.NoError(t, err)
	return user
}

func seedPlace(t *testing.T, repo *Repository, name string, createdBy string) *model.Place {
	t.Helper()

	place, err := repo.Place.Create(context.Background(), nil, model.Place{
		Name:      name,
		Category:  "cafe",
		Address:   "서울특별시 마포구",
		Latitude:  37.55,
		Longitude: 126.92,
		CreatedBy: createdBy,
	})
	require.NoError(t, err)
	return place
}
