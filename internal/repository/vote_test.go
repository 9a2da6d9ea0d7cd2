package repository

import (
	"context"
	"testing"

	"github.com/hyeonwoo/placepick/internal/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastVoteUpsertsSingleRow(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	user := seedUser(t, repo, "voter@example.com", "voter")
	place := seedPlace(t, repo, "국밥집", user.ID)

	_, err := repo.Vote.Cast(ctx, nil, user.ID, place.ID, constant.VoteTypeLike)
	require.NoError(t, err)

	_, err = repo.Vote.Cast(ctx, nil, user.ID, place.ID, constant.VoteTypeNo)
	require.NoError(t, err)

	vote, err := repo.Vote.GetByUserAndPlace(ctx, nil, user.ID, place.ID)
	require.NoError(t, err)
	assert.Equal(t, constant.VoteTypeNo, vote.VoteType)

	var count int64
	require.NoError(t, repo.DB.Table("votes").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCastVoteReturnsPersistedRowOnChange(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	user := seedUser(t, repo, "voter@example.com", "voter")
	place := seedPlace(t, repo, "국밥집", user.ID)

	first, err := repo.Vote.Cast(ctx, nil, user.ID, place.ID, constant.VoteTypeLike)
	require.NoError(t, err)

	// Changing the vote keeps the row, so the returned id must be the
	// stored one, not a fresh one from the insert attempt.
	second, err := repo.Vote.Cast(ctx, nil, user.ID, place.ID, constant.VoteTypeNo)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	stored, err := repo.Vote.GetByUserAndPlace(ctx, nil, user.ID, place.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, second.ID)
	assert.Equal(t, constant.VoteTypeNo, second.VoteType)
}

func TestLikeVoteCreatesFavorite(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	user := seedUser(t, repo, "voter@example.com", "voter")
	place := seedPlace(t, repo, "국밥집", user.ID)

	_, err := repo.Vote.Cast(ctx, nil, user.ID, place.ID, constant.VoteTypeLike)
	require.NoError(t, err)

	exists, err := repo.Favorite.Exists(ctx, nil, user.ID, place.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	// Liking again must not duplicate the favorite.
	_, err = repo.Vote.Cast(ctx, nil, user.ID, place.ID, constant.VoteTypeLike)
	require.NoError(t, err)

	favorites, err := repo.Favorite.GetAllByUserId(ctx, nil, user.ID)
	require.NoError(t, err)
	assert.Len(t, favorites, 1)
}

func TestSwitchingLikeToNoRemovesFavorite(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	user := seedUser(t, repo, "voter@example.com", "voter")
	place := seedPlace(t, repo, "국밥집", user.ID)

	_, err := repo.Vote.Cast(ctx, nil, user.ID, place.ID, constant.VoteTypeLike)
	require.NoError(t, err)

	_, err = repo.Vote.Cast(ctx, nil, user.ID, place.ID, constant.VoteTypeNo)
	require.NoError(t, err)

	exists, err := repo.Favorite.Exists(ctx, nil, user.ID, place.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNoVoteKeepsManuallyAddedFavorite(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	user := seedUser(t, repo, "voter@example.com", "voter")
	place := seedPlace(t, repo, "국밥집", user.ID)

	// Favorite added directly, no prior like vote.
	require.NoError(t, repo.Favorite.Add(ctx, nil, user.ID, place.ID))

	_, err := repo.Vote.Cast(ctx, nil, user.ID, place.ID, constant.VoteTypeNo)
	require.NoError(t, err)

	exists, err := repo.Favorite.Exists(ctx, nil, user.ID, place.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCountByPlaceIds(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	alice := seedUser(t, repo, "alice@example.com", "alice")
	bob := seedUser(t, repo, "bob@example.com", "bob")
	carol := seedUser(t, repo, "carol@example.com", "carol")
	place := seedPlace(t, repo, "국밥집", alice.ID)
	other := seedPlace(t, repo, "카페", alice.ID)

	for _, u := range []string{alice.ID, bob.ID} {
		_, err := repo.Vote.Cast(ctx, nil, u, place.ID, constant.VoteTypeLike)
		require.NoError(t, err)
	}
	_, err := repo.Vote.Cast(ctx, nil, carol.ID, place.ID, constant.VoteTypeNo)
	require.NoError(t, err)

	counts, err := repo.Vote.CountByPlaceIds(ctx, nil, []string{place.ID, other.ID})
	require.NoError(t, err)

	byPlace := map[string]VoteCount{}
	for _, c := range counts {
		byPlace[c.PlaceID] = c
	}

	assert.Equal(t, int64(2), byPlace[place.ID].Like)
	assert.Equal(t, int64(1), byPlace[place.ID].No)
	assert.Equal(t, int64(0), byPlace[other.ID].Like)
}

func TestDeleteAllVotesByUserId(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	user := seedUser(t, repo, "voter@example.com", "voter")
	other := seedUser(t, repo, "other@example.com", "other")
	place := seedPlace(t, repo, "국밥집", user.ID)

	_, err := repo.Vote.Cast(ctx, nil, user.ID, place.ID, constant.VoteTypeLike)
	require.NoError(t, err)
	_, err = repo.Vote.Cast(ctx, nil, other.ID, place.ID, constant.VoteTypeLike)
	require.NoError(t, err)

	require.NoError(t, repo.Vote.DeleteAllByUserId(ctx, nil, user.ID))

	_, err = repo.Vote.GetByUserAndPlace(ctx, nil, user.ID, place.ID)
	assert.Error(t, err)

	vote, err := repo.Vote.GetByUserAndPlace(ctx, nil, other.ID, place.ID)
	require.NoError(t, err)
	assert.Equal(t, constant.VoteTypeLike, vote.VoteType)
}
