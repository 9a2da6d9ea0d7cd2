package repository

import (
	"context"
	"errors"

	constant "github.com/hyeonwoo/placepick/internal/constant"
	"github.com/hyeonwoo/placepick/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VoteRepository struct {
	*baseRepository
}

func (vr VoteRepository) GetByUserAndPlace(ctx context.Context, tx *gorm.DB, userId string, placeId string) (*model.Vote, error) {
	vr.logger.Debugf("Get vote of user: %s on place: %s \n", userId, placeId)

	db := vr.getDB(tx)
	var vote *model.Vote

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Vote{}).Where(&model.Vote{UserID: userId, PlaceID: placeId}).First(&vote).Error; err != nil {
		return vote, err
	}

	return vote, nil
}

// Cast upserts the user's vote on a place and keeps favorite membership
// consistent with it: a "like" implies a favorite row, and flipping a "like"
// to "no" removes it. Favorites added without a preceding "like" vote are
// never touched here.
func (vr *VoteRepository) Cast(ctx context.Context, tx *gorm.DB, userId string, placeId string, voteType constant.VoteType) (*model.Vote, error) {
	vr.logger.Debugf("Cast vote %s of user: %s on place: %s \n", voteType, userId, placeId)

	db := vr.getDB(tx)
	var vote model.Vote

	txErr := vr.withTx(db, func(tx *gorm.DB) error {
		var previous *model.Vote
		err := tx.Model(&model.Vote{}).Where(&model.Vote{UserID: userId, PlaceID: placeId}).First(&previous).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		hadLike := err == nil && previous.VoteType == constant.VoteTypeLike

		vote = model.Vote{UserID: userId, PlaceID: placeId, VoteType: voteType}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "place_id"}},
			DoUpdates: clause.Assignments(map[string]any{"vote_type": voteType}),
		}).Create(&vote).Error; err != nil {
			return err
		}

		// On conflict the hook-generated id never hit the table, so read the
		// persisted row back.
		if err := tx.Model(&model.Vote{}).Where(&model.Vote{UserID: userId, PlaceID: placeId}).First(&vote).Error; err != nil {
			return err
		}

		switch {
		case voteType == constant.VoteTypeLike:
			favorite := model.Favorite{UserID: userId, PlaceID: placeId}
			if err := tx.Model(&model.Favorite{}).Where(&model.Favorite{UserID: userId, PlaceID: placeId}).FirstOrCreate(&favorite).Error; err != nil {
				return err
			}
		case voteType == constant.VoteTypeNo && hadLike:
			if err := tx.Where("user_id = ? AND place_id = ?", userId, placeId).Delete(&model.Favorite{}).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return &vote, nil
}

type VoteCount struct {
	PlaceID string `json:"placeId"`
	Like    int64  `json:"like"`
	No      int64  `json:"no"`
}

// CountByPlaceIds aggregates like/no totals for a set of places.
func (vr VoteRepository) CountByPlaceIds(ctx context.Context, tx *gorm.DB, placeIds []string) ([]VoteCount, error) {
	vr.logger.Debugf("Count votes for %d places \n", len(placeIds))

	db := vr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var rows []struct {
		PlaceID  string
		VoteType constant.VoteType
		Total    int64
	}
	if err := db.WithContext(ctx).Model(&model.Vote{}).
		Select("place_id, vote_type, COUNT(*) AS total").
		Where("place_id IN ?", placeIds).
		Group("place_id, vote_type").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := map[string]*VoteCount{}
	for _, row := range rows {
		count, ok := counts[row.PlaceID]
		if !ok {
			count = &VoteCount{PlaceID: row.PlaceID}
			counts[row.PlaceID] = count
		}
		if row.VoteType == constant.VoteTypeLike {
			count.Like = row.Total
		} else {
			count.No = row.Total
		}
	}

	result := make([]VoteCount, 0, len(counts))
	for _, count := range counts {
		result = append(result, *count)
	}

	return result, nil
}

func (vr *VoteRepository) DeleteAllByUserId(ctx context.Context, tx *gorm.DB, userId string) error {
	vr.logger.Debugf("Delete votes of user: %s \n", userId)

	db := vr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.Vote{}).Error
}
