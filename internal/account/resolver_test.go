package account

import (
	"context"
	"testing"

	"github.com/hyeonwoo/placepick/internal/constant"
	"github.com/hyeonwoo/placepick/internal/oauth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func googleClaims(accountId string, email string) oauth.Claims {
	return oauth.Claims{
		Provider:          constant.OAUTH_PROVIDER_GOOGLE,
		ProviderAccountID: accountId,
		Email:             email,
		Name:              "tester",
		AvatarURL:         "https://example.com/avatar.png",
		AccessToken:       "access-1",
		RefreshToken:      "refresh-1",
		ExpiresAt:         1700000000,
	}
}

func TestResolveCreatesIdentityOnFirstLogin(t *testing.T) {
	repo := newTestRepository(t)
	resolver := NewResolver(repo, nil)
	ctx := context.Background()

	user, err := resolver.Resolve(ctx, googleClaims("g-1", "tester@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "tester@example.com", user.Email)
	assert.Equal(t, "tester", user.Name)

	accounts, err := repo.LinkedAccount.GetAllByUserId(ctx, nil, user.ID)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, constant.OAUTH_PROVIDER_GOOGLE, accounts[0].Provider)

	// The profile row shares the user's id.
	profile, err := repo.Profile.GetById(ctx, nil, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "tester", profile.Username)
}

func TestResolveReturnsSameIdentityOnRepeatLogin(t *testing.T) {
	repo := newTestRepository(t)
	resolver := NewResolver(repo, nil)
	ctx := context.Background()

	first, err := resolver.Resolve(ctx, googleClaims("g-1", "tester@example.com"))
	require.NoError(t, err)

	again := googleClaims("g-1", "tester@example.com")
	again.AccessToken = "access-2"
	second, err := resolver.Resolve(ctx, again)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	// Repeat login refreshes the stored tokens.
	accounts, err := repo.LinkedAccount.GetAllByUserId(ctx, nil, first.ID)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "access-2", accounts[0].AccessToken)
}

func TestResolveLinksSecondProviderByEmail(t *testing.T) {
	repo := newTestRepository(t)
	resolver := NewResolver(repo, nil)
	ctx := context.Background()

	first, err := resolver.Resolve(ctx, googleClaims("g-1", "tester@example.com"))
	require.NoError(t, err)

	kakao := oauth.Claims{
		Provider:          constant.OAUTH_PROVIDER_KAKAO,
		ProviderAccountID: "k-1",
		Email:             "tester@example.com",
		Name:              "tester",
		AccessToken:       "kakao-access",
	}
	second, err := resolver.Resolve(ctx, kakao)
	require.NoError(t, err)

	// Same email means same identity, not a second user row.
	assert.Equal(t, first.ID, second.ID)

	accounts, err := repo.LinkedAccount.GetAllByUserId(ctx, nil, first.ID)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
}

func TestResolveWithoutEmailCreatesSeparateIdentity(t *testing.T) {
	repo := newTestRepository(t)
	resolver := NewResolver(repo, nil)
	ctx := context.Background()

	first, err := resolver.Resolve(ctx, googleClaims("g-1", "tester@example.com"))
	require.NoError(t, err)

	noEmail := oauth.Claims{
		Provider:          constant.OAUTH_PROVIDER_KAKAO,
		ProviderAccountID: "k-2",
		Name:              "tester",
		AccessToken:       "kakao-access",
	}
	second, err := resolver.Resolve(ctx, noEmail)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestResolveKeepsRefreshTokenWhenProviderOmitsIt(t *testing.T) {
	repo := newTestRepository(t)
	resolver := NewResolver(repo, nil)
	ctx := context.Background()

	user, err := resolver.Resolve(ctx, googleClaims("g-1", "tester@example.com"))
	require.NoError(t, err)

	// Providers often return a refresh token only on the first grant.
	again := googleClaims("g-1", "tester@example.com")
	again.AccessToken = "access-2"
	again.RefreshToken = ""
	_, err = resolver.Resolve(ctx, again)
	require.NoError(t, err)

	accounts, err := repo.LinkedAccount.GetAllByUserId(ctx, nil, user.ID)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "refresh-1", accounts[0].RefreshToken)
}
