package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hyeonwoo/placepick/internal/model"
	"github.com/hyeonwoo/placepick/internal/oauth"
	"github.com/hyeonwoo/placepick/internal/repository"
	"github.com/hyeonwoo/placepick/internal/util"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Resolver turns a completed OAuth exchange into exactly one identity.
//
// Two different provider accounts claiming the same email are merged into one
// identity. This trusts the email claim from the provider without
// re-verification; the deliberate trade-off is less sign-in friction for users
// who switch providers.
type Resolver struct {
	logger *zap.SugaredLogger
	repo   *repository.Repository
}

func NewResolver(repo *repository.Repository, logger *zap.SugaredLogger) *Resolver {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("")
	}

	return &Resolver{repo: repo, logger: logger}
}

// Resolve returns the identity owning (provider, providerAccountId), linking
// or creating rows as needed. At most one user row and one linked-account row
// are inserted per call.
func (r *Resolver) Resolve(ctx context.Context, claims oauth.Claims) (*model.User, error) {
	var user *model.User

	txErr := r.repo.DB.Transaction(func(tx *gorm.DB) error {
		// Login path: the provider account is already linked.
		linked, err := r.repo.LinkedAccount.GetByProviderAccount(ctx, tx, claims.Provider, claims.ProviderAccountID)
		if err == nil {
			if err := r.repo.LinkedAccount.UpdateTokens(ctx, tx, linked.ID, claims.AccessToken, claims.RefreshToken, claims.ExpiresAt); err != nil {
				return err
			}
			if err := r.repo.User.UpdateProfileClaims(ctx, tx, linked.UserID, claims.Name, claims.AvatarURL); err != nil {
				return err
			}

			user, err = r.repo.User.GetById(ctx, tx, linked.UserID)
			return err
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// Linking path: a different provider already created an identity with
		// this email.
		if claims.Email != "" {
			existing, err := r.repo.User.GetByEmail(ctx, tx, claims.Email)
			if err == nil {
				r.logger.Debugf("Linking provider %s to existing identity %s via email", claims.Provider, existing.ID)
				if err := r.createLinkedAccount(ctx, tx, existing.ID, claims); err != nil {
					return err
				}

				user = existing
				return nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		// First-ever login: fresh identity plus its linked account and profile.
		created, err := r.repo.User.Create(ctx, tx, model.User{
			Email:     claims.Email,
			Name:      claims.Name,
			AvatarURL: claims.AvatarURL,
		})
		if err != nil {
			return err
		}

		if err := r.createLinkedAccount(ctx, tx, created.ID, claims); err != nil {
			return err
		}

		if err := r.repo.Profile.EnsureExists(ctx, tx, created.ID, defaultUsername(claims)); err != nil {
			return err
		}

		user = created
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("identity resolution failed: %w", txErr)
	}

	return user, nil
}

func (r *Resolver) createLinkedAccount(ctx context.Context, tx *gorm.DB, userId string, claims oauth.Claims) error {
	return r.repo.LinkedAccount.Create(ctx, tx, model.LinkedAccount{
		Provider:          claims.Provider,
		ProviderAccountId: claims.ProviderAccountID,
		AccessToken:       claims.AccessToken,
		RefreshToken:      claims.RefreshToken,
		ExpiresAt:         claims.ExpiresAt,
		UserID:            userId,
	})
}

func defaultUsername(claims oauth.Claims) string {
	if claims.Name != "" {
		return claims.Name
	}
	if at := strings.Index(claims.Email, "@"); at > 0 {
		return claims.Email[:at]
	}
	return ""
}
