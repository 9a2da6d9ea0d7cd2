package account

import (
	"context"
	"errors"
	"testing"

	"github.com/hyeonwoo/placepick/internal/config"
	"github.com/hyeonwoo/placepick/internal/constant"
	"github.com/hyeonwoo/placepick/internal/model"
	"github.com/hyeonwoo/placepick/internal/oauth"
	"github.com/hyeonwoo/placepick/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUnlinker struct {
	err   error
	calls int
}

func (f *fakeUnlinker) Unlink(ctx context.Context, account model.LinkedAccount) error {
	f.calls++
	return f.err
}

func newTestDeleter(t *testing.T, repo *repository.Repository, unlinkers map[string]oauth.ProviderUnlinker) *Deleter {
	t.Helper()

	orchestrator := oauth.NewUnlinkOrchestrator(config.AuthConfig{}, nil)
	for provider, unlinker := range unlinkers {
		orchestrator.Register(provider, unlinker)
	}

	return NewDeleter(repo, orchestrator, nil)
}

func seedAccountForDeletion(t *testing.T, repo *repository.Repository) *model.User {
	t.Helper()
	ctx := context.Background()

	resolver := NewResolver(repo, nil)
	user, err := resolver.Resolve(ctx, googleClaims("g-1", "leaver@example.com"))
	require.NoError(t, err)

	require.NoError(t, repo.LinkedAccount.Create(ctx, nil, model.LinkedAccount{
		Provider:          constant.OAUTH_PROVIDER_KAKAO,
		ProviderAccountId: "k-1",
		AccessToken:       "kakao-access",
		UserID:            user.ID,
	}))

	_, err = repo.Session.Create(ctx, nil, model.Session{
		Token:     "tok-1",
		UserID:    user.ID,
		ExpiresAt: futureTime(),
	})
	require.NoError(t, err)

	require.NoError(t, repo.Consent.Upsert(ctx, nil, model.Consent{
		Email:         user.Email,
		TermsAgreed:   true,
		PrivacyAgreed: true,
	}))

	place, err := repo.Place.Create(ctx, nil, model.Place{
		Name: "국밥집", Category: "restaurant", Address: "서울",
		Latitude: 37.5, Longitude: 127.0, CreatedBy: user.ID,
	})
	require.NoError(t, err)

	_, err = repo.Vote.Cast(ctx, nil, user.ID, place.ID, constant.VoteTypeLike)
	require.NoError(t, err)

	_, err = repo.Review.Create(ctx, nil, model.Review{
		UserID: user.ID, PlaceID: place.ID, Content: "좋아요", Rating: 4,
	})
	require.NoError(t, err)

	require.NoError(t, repo.Notification.Create(ctx, nil, model.Notification{
		UserID: user.ID, Type: constant.NotificationTypeReview, Message: "hello",
	}))

	return user
}

func TestDeleteRemovesEverything(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	google := &fakeUnlinker{}
	kakao := &fakeUnlinker{}
	deleter := newTestDeleter(t, repo, map[string]oauth.ProviderUnlinker{
		constant.OAUTH_PROVIDER_GOOGLE: google,
		constant.OAUTH_PROVIDER_KAKAO:  kakao,
	})

	user := seedAccountForDeletion(t, repo)

	outcomes, err := deleter.Delete(ctx, user)
	require.NoError(t, err)
	assert.Len(t, outcomes, 2)
	assert.Equal(t, 1, google.calls)
	assert.Equal(t, 1, kakao.calls)

	_, err = repo.User.GetById(ctx, nil, user.ID)
	assert.Error(t, err)

	accounts, err := repo.LinkedAccount.GetAllByUserId(ctx, nil, user.ID)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	_, err = repo.Session.GetByToken(ctx, nil, "tok-1")
	assert.Error(t, err)

	_, err = repo.Profile.GetById(ctx, nil, user.ID)
	assert.Error(t, err)

	consents, err := repo.Consent.GetByEmail(ctx, nil, "leaver@example.com")
	require.NoError(t, err)
	assert.Empty(t, consents)

	favorites, err := repo.Favorite.GetAllByUserId(ctx, nil, user.ID)
	require.NoError(t, err)
	assert.Empty(t, favorites)

	unread, err := repo.Notification.CountUnread(ctx, nil, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unread)
}

func TestDeleteProceedsWhenUnlinkFails(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	deleter := newTestDeleter(t, repo, map[string]oauth.ProviderUnlinker{
		constant.OAUTH_PROVIDER_GOOGLE: &fakeUnlinker{err: errors.New("provider down")},
		constant.OAUTH_PROVIDER_KAKAO:  &fakeUnlinker{err: errors.New("provider down")},
	})

	user := seedAccountForDeletion(t, repo)

	outcomes, err := deleter.Delete(ctx, user)
	require.NoError(t, err)

	for _, outcome := range outcomes {
		assert.False(t, outcome.Ok)
		assert.Contains(t, outcome.Detail, "provider down")
	}

	// Local data is gone even though revocation failed everywhere.
	_, err = repo.User.GetById(ctx, nil, user.ID)
	assert.Error(t, err)
}

func TestDeleteSkipsUnknownProvider(t *testing.T) {
	ctx := context.Background()

	// "myspace" is not among the registered providers.
	orchestrator := oauth.NewUnlinkOrchestrator(config.AuthConfig{}, nil)
	outcomes := orchestrator.UnlinkAll(ctx, []model.LinkedAccount{
		{Provider: "myspace", ProviderAccountId: "m-1"},
	})

	require.Len(t, outcomes, 1)
	assert.False(t, outcomes[0].Ok)
	assert.Equal(t, "unknown provider", outcomes[0].Detail)
}

func TestDeleteIsIdempotentPerStage(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	deleter := newTestDeleter(t, repo, map[string]oauth.ProviderUnlinker{
		constant.OAUTH_PROVIDER_GOOGLE: &fakeUnlinker{},
		constant.OAUTH_PROVIDER_KAKAO:  &fakeUnlinker{},
	})

	user := seedAccountForDeletion(t, repo)

	_, err := deleter.Delete(ctx, user)
	require.NoError(t, err)

	// A retried cascade on an already-deleted account must not error.
	_, err = deleter.Delete(ctx, user)
	require.NoError(t, err)
}
