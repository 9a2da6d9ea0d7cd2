package repository

import (
	"context"
	"fmt"

	constant "github.com/hyeonwoo/placepick/internal/constant"
	"github.com/hyeonwoo/placepick/internal/model"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	*baseRepository
}

func (rr ReviewRepository) GetById(ctx context.Context, tx *gorm.DB, reviewId string) (*model.Review, error) {
	rr.logger.Debugf("Get review by id: %s \n", reviewId)

	db := rr.getDB(tx)
	var review *model.Review

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Review{}).Where(&model.Review{BaseModel: model.BaseModel{ID: reviewId}}).First(&review).Error; err != nil {
		return review, err
	}

	return review, nil
}

func (rr ReviewRepository) ListByPlaceId(ctx context.Context, tx *gorm.DB, placeId string, page uint, pageSize uint) ([]model.Review, int64, error) {
	rr.logger.Debugf("List reviews of place: %s page: %d \n", placeId, page)

	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.Review{}).Where("place_id = ?", placeId)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []model.Review
	offset := int((page - 1) * pageSize)
	if err := query.Preload("User").Order("created_at DESC").Offset(offset).Limit(int(pageSize)).Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

func (rr *ReviewRepository) Create(ctx context.Context, tx *gorm.DB, newReview model.Review) (*model.Review, error) {
	rr.logger.Debugf("Create review with data: %v \n", newReview)

	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	review := model.Review{
		UserID:   newReview.UserID,
		PlaceID:  newReview.PlaceID,
		Content:  newReview.Content,
		Rating:   newReview.Rating,
		ImageURL: newReview.ImageURL,
	}
	if err := db.WithContext(ctx).Model(&model.Review{}).Create(&review).Error; err != nil {
		return nil, err
	}

	return &review, nil
}

func (rr *ReviewRepository) DeleteById(ctx context.Context, tx *gorm.DB, reviewId string) error {
	rr.logger.Debugf("Delete review by id: %s \n", reviewId)

	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where("id = ?", reviewId).Delete(&model.Review{}).Error
}

// MarkHelpful bumps the helpful counter and notifies the review author in the
// same transaction. Voting your own review helpful creates no notification.
func (rr *ReviewRepository) MarkHelpful(ctx context.Context, tx *gorm.DB, reviewId string, byUserId string) error {
	rr.logger.Debugf("Mark review %s helpful by user: %s \n", reviewId, byUserId)

	db := rr.getDB(tx)

	return rr.withTx(db, func(tx *gorm.DB) error {
		var review model.Review
		if err := tx.Model(&model.Review{}).Where("id = ?", reviewId).First(&review).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.Review{}).Where("id = ?", reviewId).Update("helpful_count", gorm.Expr("helpful_count + 1")).Error; err != nil {
			return err
		}

		if review.UserID == byUserId {
			return nil
		}

		return tx.Model(&model.Notification{}).Create(&model.Notification{
			UserID:  review.UserID,
			Type:    constant.NotificationTypeHelpful,
			Message: "누군가 회원님의 리뷰를 유용하다고 평가했습니다.",
			URL:     fmt.Sprintf("/place/%s", review.PlaceID),
		}).Error
	})
}

// CreateReply inserts the reply and a notification for the review author in
// one transaction so neither can exist without the other.
func (rr *ReviewRepository) CreateReply(ctx context.Context, tx *gorm.DB, newReply model.ReviewReply) (*model.ReviewReply, error) {
	rr.logger.Debugf("Create reply on review: %s by user: %s \n", newReply.ReviewID, newReply.UserID)

	db := rr.getDB(tx)
	var reply model.ReviewReply

	txErr := rr.withTx(db, func(tx *gorm.DB) error {
		var review model.Review
		if err := tx.Model(&model.Review{}).Where("id = ?", newReply.ReviewID).First(&review).Error; err != nil {
			return err
		}

		reply = model.ReviewReply{
			ReviewID: newReply.ReviewID,
			UserID:   newReply.UserID,
			Content:  newReply.Content,
		}
		if err := tx.Model(&model.ReviewReply{}).Create(&reply).Error; err != nil {
			return err
		}

		if review.UserID == newReply.UserID {
			return nil
		}

		return tx.Model(&model.Notification{}).Create(&model.Notification{
			UserID:  review.UserID,
			Type:    constant.NotificationTypeReply,
			Message: "회원님의 리뷰에 답글이 달렸습니다.",
			URL:     fmt.Sprintf("/place/%s", review.PlaceID),
		}).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	return &reply, nil
}

func (rr ReviewRepository) ListReplies(ctx context.Context, tx *gorm.DB, reviewId string) ([]model.ReviewReply, error) {
	rr.logger.Debugf("List replies of review: %s \n", reviewId)

	db := rr.getDB(tx)
	var replies []model.ReviewReply

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.ReviewReply{}).Preload("User").Where("review_id = ?", reviewId).Order("created_at ASC").Find(&replies).Error; err != nil {
		return nil, err
	}

	return replies, nil
}

func (rr *ReviewRepository) DeleteAllByUserId(ctx context.Context, tx *gorm.DB, userId string) error {
	rr.logger.Debugf("Delete reviews of user: %s \n", userId)

	db := rr.getDB(tx)

	return rr.withTx(db, func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userId).Delete(&model.ReviewReply{}).Error; err != nil {
			return err
		}

		// Replies from other users on this user's reviews go too.
		if err := tx.Where("review_id IN (?)", tx.Session(&gorm.Session{NewDB: true}).Model(&model.Review{}).Select("id").Where("user_id = ?", userId)).Delete(&model.ReviewReply{}).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ?", userId).Delete(&model.Review{}).Error
	})
}
