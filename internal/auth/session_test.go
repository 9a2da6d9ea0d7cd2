package auth

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/hyeonwoo/placepick/internal/constant"
	"github.com/hyeonwoo/placepick/internal/model"
	"github.com/hyeonwoo/placepick/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestSessionService(t *testing.T) (*SessionService, *repository.Repository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Session{}))

	repo := repository.NewRepository(db, nil)
	return NewSessionService(repo, nil), repo
}

func TestIssueAndValidateSession(t *testing.T) {
	service, repo := newTestSessionService(t)
	ctx := context.Background()

	user, err := repo.User.Create(ctx, nil, model.User{Email: "a@example.com", Name: "a"})
	require.NoError(t, err)

	session, err := service.Issue(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, session.Token, constant.SESSION_TOKEN_CHAR)
	assert.True(t, session.ExpiresAt.After(time.Now()))

	gotUser, gotSession, err := service.Validate(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, gotUser.ID)
	assert.Equal(t, session.ID, gotSession.ID)
}

func TestValidateRejectsUnknownToken(t *testing.T) {
	service, _ := newTestSessionService(t)

	_, _, err := service.Validate(context.Background(), "no-such-token")
	assert.Error(t, err)
}

func TestValidateRemovesExpiredSession(t *testing.T) {
	service, repo := newTestSessionService(t)
	ctx := context.Background()

	user, err := repo.User.Create(ctx, nil, model.User{Email: "a@example.com", Name: "a"})
	require.NoError(t, err)

	session, err := repo.Session.Create(ctx, nil, model.Session{
		Token:     "expired-token",
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	require.NoError(t, err)

	_, _, err = service.Validate(ctx, session.Token)
	assert.ErrorIs(t, err, ErrSessionExpired)

	// The expired row must be gone, not just rejected.
	_, err = repo.Session.GetByToken(ctx, nil, session.Token)
	assert.Error(t, err)
}

func TestValidateSlidesExpiryForOldSessions(t *testing.T) {
	service, repo := newTestSessionService(t)
	ctx := context.Background()

	user, err := repo.User.Create(ctx, nil, model.User{Email: "a@example.com", Name: "a"})
	require.NoError(t, err)

	session, err := service.Issue(ctx, user.ID)
	require.NoError(t, err)

	// Age the session past the update threshold.
	stale := time.Now().Add(-2 * constant.SESSION_UPDATE_AGE)
	require.NoError(t, repo.DB.Model(&model.Session{}).
		Where("id = ?", session.ID).
		UpdateColumn("updated_at", stale).Error)

	_, refreshed, err := service.Validate(ctx, session.Token)
	require.NoError(t, err)
	assert.True(t, refreshed.ExpiresAt.After(session.ExpiresAt))
}

func TestRevokeSession(t *testing.T) {
	service, repo := newTestSessionService(t)
	ctx := context.Background()

	user, err := repo.User.Create(ctx, nil, model.User{Email: "a@example.com", Name: "a"})
	require.NoError(t, err)

	session, err := service.Issue(ctx, user.ID)
	require.NoError(t, err)

	require.NoError(t, service.Revoke(ctx, session.Token))

	_, _, err = service.Validate(ctx, session.Token)
	assert.Error(t, err)
}

func TestRevokeAllSessions(t *testing.T) {
	service, repo := newTestSessionService(t)
	ctx := context.Background()

	user, err := repo.User.Create(ctx, nil, model.User{Email: "a@example.com", Name: "a"})
	require.NoError(t, err)
	other, err := repo.User.Create(ctx, nil, model.User{Email: "b@example.com", Name: "b"})
	require.NoError(t, err)

	first, err := service.Issue(ctx, user.ID)
	require.NoError(t, err)
	second, err := service.Issue(ctx, user.ID)
	require.NoError(t, err)
	otherSession, err := service.Issue(ctx, other.ID)
	require.NoError(t, err)

	require.NoError(t, service.RevokeAll(ctx, user.ID))

	_, _, err = service.Validate(ctx, first.Token)
	assert.Error(t, err)
	_, _, err = service.Validate(ctx, second.Token)
	assert.Error(t, err)

	// Force sign-out only touches the target user.
	_, _, err = service.Validate(ctx, otherSession.Token)
	assert.NoError(t, err)
}
