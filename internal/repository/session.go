package repository

import (
	"context"
	"time"

	constant "github.com/hyeonwoo/placepick/internal/constant"
	"github.com/hyeonwoo/placepick/internal/model"
	"gorm.io/gorm"
)

type SessionRepository struct {
	*baseRepository
}

func (sr *SessionRepository) Create(ctx context.Context, tx *gorm.DB, newSession model.Session) (*model.Session, error) {
	sr.logger.Debugf("Create session for user: %s \n", newSession.UserID)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	session := model.Session{
		Token:     newSession.Token,
		UserID:    newSession.UserID,
		ExpiresAt: newSession.ExpiresAt,
	}
	if err := db.WithContext(ctx).Model(&model.Session{}).Create(&session).Error; err != nil {
		return nil, err
	}

	return &session, nil
}

func (sr SessionRepository) GetByToken(ctx context.Context, tx *gorm.DB, token string) (*model.Session, error) {
	sr.logger.Debug("Get session by token")

	db := sr.getDB(tx)
	var session *model.Session

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Session{}).Where(&model.Session{Token: token}).First(&session).Error; err != nil {
		return session, err
	}

	return session, nil
}

// Refresh pushes the expiry forward for a sliding-expiry session.
func (sr *SessionRepository) Refresh(ctx context.Context, tx *gorm.DB, sessionId string, expiresAt time.Time) error {
	sr.logger.Debugf("Refresh session: %s \n", sessionId)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Session{}).Where("id = ?", sessionId).Updates(map[string]any{
		"expires_at": expiresAt,
		"updated_at": time.Now(),
	}).Error
}

func (sr *SessionRepository) DeleteByToken(ctx context.Context, tx *gorm.DB, token string) error {
	sr.logger.Debug("Delete session by token")

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where("token = ?", token).Delete(&model.Session{}).Error
}

func (sr *SessionRepository) DeleteAllByUserId(ctx context.Context, tx *gorm.DB, userId string) error {
	sr.logger.Debugf("Delete sessions of user: %s \n", userId)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.Session{}).Error
}

func (sr *SessionRepository) DeleteExpired(ctx context.Context, tx *gorm.DB) error {
	sr.logger.Debug("Delete expired sessions")

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where("expires_at < ?", time.Now()).Delete(&model.Session{}).Error
}
