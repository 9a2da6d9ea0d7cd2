package repository

import (
	"context"
	"testing"

	"github.com/hyeonwoo/placepick/internal/constant"
	"github.com/hyeonwoo/placepick/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedReview(t *testing.T, repo *Repository, userId string, placeId string) *model.Review {
	t.Helper()

	review, err := repo.Review.Create(context.Background(), nil, model.Review{
		UserID:  userId,
		PlaceID: placeId,
		Content: "진하고 맛있어요",
		Rating:  5,
	})
	require.NoError(t, err)
	return review
}

func TestCreateReplyNotifiesReviewAuthor(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	author := seedUser(t, repo, "author@example.com", "author")
	replier := seedUser(t, repo, "replier@example.com", "replier")
	place := seedPlace(t, repo, "국밥집", author.ID)
	review := seedReview(t, repo, author.ID, place.ID)

	reply, err := repo.Review.CreateReply(ctx, nil, model.ReviewReply{
		ReviewID: review.ID,
		UserID:   replier.ID,
		Content:  "저도 가봤는데 동의합니다",
	})
	require.NoError(t, err)
	assert.Equal(t, review.ID, reply.ReviewID)

	notifications, total, err := repo.Notification.ListByUserId(ctx, nil, author.ID, 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	assert.Equal(t, constant.NotificationTypeReply, notifications[0].Type)
	assert.False(t, notifications[0].IsRead)
}

func TestReplyToOwnReviewCreatesNoNotification(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	author := seedUser(t, repo, "author@example.com", "author")
	place := seedPlace(t, repo, "국밥집", author.ID)
	review := seedReview(t, repo, author.ID, place.ID)

	_, err := repo.Review.CreateReply(ctx, nil, model.ReviewReply{
		ReviewID: review.ID,
		UserID:   author.ID,
		Content:  "추가로, 주차장도 넓어요",
	})
	require.NoError(t, err)

	unread, err := repo.Notification.CountUnread(ctx, nil, author.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unread)
}

func TestMarkHelpfulIncrementsAndNotifies(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	author := seedUser(t, repo, "author@example.com", "author")
	reader := seedUser(t, repo, "reader@example.com", "reader")
	place := seedPlace(t, repo, "국밥집", author.ID)
	review := seedReview(t, repo, author.ID, place.ID)

	require.NoError(t, repo.Review.MarkHelpful(ctx, nil, review.ID, reader.ID))
	require.NoError(t, repo.Review.MarkHelpful(ctx, nil, review.ID, author.ID))

	got, err := repo.Review.GetById(ctx, nil, review.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.HelpfulCount)

	// Only the other user's mark produced a notification.
	unread, err := repo.Notification.CountUnread(ctx, nil, author.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}

func TestDeleteAllReviewsByUserIdRemovesDependents(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	leaver := seedUser(t, repo, "leaver@example.com", "leaver")
	stayer := seedUser(t, repo, "stayer@example.com", "stayer")
	place := seedPlace(t, repo, "국밥집", stayer.ID)

	leaverReview := seedReview(t, repo, leaver.ID, place.ID)
	stayerReview := seedReview(t, repo, stayer.ID, place.ID)

	// Replies in both directions.
	_, err := repo.Review.CreateReply(ctx, nil, model.ReviewReply{
		ReviewID: leaverReview.ID, UserID: stayer.ID, Content: "정보 감사합니다",
	})
	require.NoError(t, err)
	_, err = repo.Review.CreateReply(ctx, nil, model.ReviewReply{
		ReviewID: stayerReview.ID, UserID: leaver.ID, Content: "좋은 리뷰네요",
	})
	require.NoError(t, err)

	require.NoError(t, repo.Review.DeleteAllByUserId(ctx, nil, leaver.ID))

	_, err = repo.Review.GetById(ctx, nil, leaverReview.ID)
	assert.Error(t, err)

	// The other user's review survives with no dangling replies from either
	// side of the deleted account.
	kept, err := repo.Review.GetById(ctx, nil, stayerReview.ID)
	require.NoError(t, err)
	assert.Equal(t, stayer.ID, kept.UserID)

	replies, err := repo.Review.ListReplies(ctx, nil, stayerReview.ID)
	require.NoError(t, err)
	assert.Empty(t, replies)
}
