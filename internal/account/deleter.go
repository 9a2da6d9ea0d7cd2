package account

import (
	"context"
	"fmt"

	"github.com/hyeonwoo/placepick/internal/model"
	"github.com/hyeonwoo/placepick/internal/oauth"
	"github.com/hyeonwoo/placepick/internal/repository"
	"github.com/hyeonwoo/placepick/internal/util"
	"go.uber.org/zap"
)

// DeletionStage identifies which step of the cascade failed, so a caller can
// distinguish partial-failure states and retry.
type DeletionStage string

const (
	StageAccountInfo DeletionStage = "account info deletion"
	StageSession     DeletionStage = "session deletion"
	StageContent     DeletionStage = "user content deletion"
	StageIdentity    DeletionStage = "identity deletion"
	StageProfile     DeletionStage = "profile deletion"
	StageConsent     DeletionStage = "consent deletion"
)

type StageError struct {
	Stage DeletionStage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Deleter removes an identity together with every row referencing it, in
// dependency order. Provider revocation runs first and is best-effort; local
// deletion never waits on a third-party API being reachable.
type Deleter struct {
	logger   *zap.SugaredLogger
	repo     *repository.Repository
	unlinker *oauth.UnlinkOrchestrator
}

func NewDeleter(repo *repository.Repository, unlinker *oauth.UnlinkOrchestrator, logger *zap.SugaredLogger) *Deleter {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("")
	}

	return &Deleter{repo: repo, unlinker: unlinker, logger: logger}
}

// Delete runs the cascade. Each storage step's failure aborts the remainder
// with a StageError; steps are individually idempotent so a partially failed
// run can be retried while the caller still holds a session.
func (d *Deleter) Delete(ctx context.Context, user *model.User) ([]oauth.UnlinkOutcome, error) {
	d.logger.Infof("Deleting account %s", user.ID)

	accounts, err := d.repo.LinkedAccount.GetAllByUserId(ctx, nil, user.ID)
	if err != nil {
		return nil, &StageError{Stage: StageAccountInfo, Err: err}
	}

	outcomes := d.unlinker.UnlinkAll(ctx, accounts)
	for _, outcome := range outcomes {
		if !outcome.Ok {
			d.logger.Warnf("Provider %s revocation incomplete: %s", outcome.Provider, outcome.Detail)
		}
	}

	if err := d.repo.LinkedAccount.DeleteAllByUserId(ctx, nil, user.ID); err != nil {
		return outcomes, &StageError{Stage: StageAccountInfo, Err: err}
	}

	if err := d.repo.Session.DeleteAllByUserId(ctx, nil, user.ID); err != nil {
		return outcomes, &StageError{Stage: StageSession, Err: err}
	}

	if err := d.deleteUserContent(ctx, user.ID); err != nil {
		return outcomes, &StageError{Stage: StageContent, Err: err}
	}

	if err := d.repo.User.DeleteById(ctx, nil, user.ID); err != nil {
		return outcomes, &StageError{Stage: StageIdentity, Err: err}
	}

	if err := d.repo.Profile.DeleteById(ctx, nil, user.ID); err != nil {
		return outcomes, &StageError{Stage: StageProfile, Err: err}
	}

	if user.Email != "" {
		if err := d.repo.Consent.DeleteByEmail(ctx, nil, user.Email); err != nil {
			return outcomes, &StageError{Stage: StageConsent, Err: err}
		}
	}

	d.logger.Infof("Account %s fully deleted", user.ID)
	return outcomes, nil
}

func (d *Deleter) deleteUserContent(ctx context.Context, userId string) error {
	if err := d.repo.Vote.DeleteAllByUserId(ctx, nil, userId); err != nil {
		return err
	}
	if err := d.repo.Favorite.DeleteAllByUserId(ctx, nil, userId); err != nil {
		return err
	}
	if err := d.repo.Notification.DeleteAllByUserId(ctx, nil, userId); err != nil {
		return err
	}
	return d.repo.Review.DeleteAllByUserId(ctx, nil, userId)
}
