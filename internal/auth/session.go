package auth

import (
	"context"
	"errors"
	"time"

	"github.com/hyeonwoo/placepick/internal/constant"
	"github.com/hyeonwoo/placepick/internal/model"
	"github.com/hyeonwoo/placepick/internal/repository"
	"github.com/hyeonwoo/placepick/internal/util"
	"go.uber.org/zap"
)

var ErrSessionExpired = errors.New("session expired")

type SessionService struct {
	logger *zap.SugaredLogger
	repo   *repository.Repository
}

type SessionInterface interface {
	Issue(ctx context.Context, userId string) (*model.Session, error)
	Validate(ctx context.Context, token string) (*model.User, *model.Session, error)
	Revoke(ctx context.Context, token string) error
	RevokeAll(ctx context.Context, userId string) error
}

func NewSessionService(repo *repository.Repository, logger *zap.SugaredLogger) *SessionService {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("")
	}

	return &SessionService{repo: repo, logger: logger}
}

// Issue creates a fresh server-persisted session with an opaque token.
// There is no retry: a storage failure surfaces and the caller re-attempts login.
func (s SessionService) Issue(ctx context.Context, userId string) (*model.Session, error) {
	s.logger.Debugf("Issue session for user: %s", userId)

	token, err := util.GenerateNChar(constant.SESSION_TOKEN_CHAR)
	if err != nil {
		return nil, err
	}

	session, err := s.repo.Session.Create(ctx, nil, model.Session{
		Token:     token,
		UserID:    userId,
		ExpiresAt: time.Now().Add(constant.SESSION_LIFETIME),
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

// Validate resolves a token to its user. Expired sessions are removed and
// rejected. Valid sessions older than the update age get their expiry pushed
// forward (sliding expiry) without issuing a new token.
func (s SessionService) Validate(ctx context.Context, token string) (*model.User, *model.Session, error) {
	session, err := s.repo.Session.GetByToken(ctx, nil, token)
	if err != nil {
		return nil, nil, err
	}

	if time.Now().After(session.ExpiresAt) {
		s.logger.Debugf("Session %s expired, removing", session.ID)
		if delErr := s.repo.Session.DeleteByToken(ctx, nil, token); delErr != nil {
			s.logger.Errorf("Failed to remove expired session: %v", delErr)
		}
		return nil, nil, ErrSessionExpired
	}

	if session.UpdatedAt != nil && time.Since(*session.UpdatedAt) > constant.SESSION_UPDATE_AGE {
		newExpiry := time.Now().Add(constant.SESSION_LIFETIME)
		if err := s.repo.Session.Refresh(ctx, nil, session.ID, newExpiry); err != nil {
			// A failed refresh is not fatal; the session is still valid.
			s.logger.Errorf("Failed to refresh session %s: %v", session.ID, err)
		} else {
			session.ExpiresAt = newExpiry
		}
	}

	user, err := s.repo.User.GetById(ctx, nil, session.UserID)
	if err != nil {
		return nil, nil, err
	}

	return user, session, nil
}

func (s SessionService) Revoke(ctx context.Context, token string) error {
	s.logger.Debug("Revoke session")
	return s.repo.Session.DeleteByToken(ctx, nil, token)
}

func (s SessionService) RevokeAll(ctx context.Context, userId string) error {
	s.logger.Debugf("Revoke all sessions of user: %s", userId)
	return s.repo.Session.DeleteAllByUserId(ctx, nil, userId)
}
