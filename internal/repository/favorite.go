package repository

import (
	"context"

	constant "github.com/hyeonwoo/placepick/internal/constant"
	"github.com/hyeonwoo/placepick/internal/model"
	"gorm.io/gorm"
)

type FavoriteRepository struct {
	*baseRepository
}

// Add is idempotent on the (user, place) pair.
func (fr *FavoriteRepository) Add(ctx context.Context, tx *gorm.DB, userId string, placeId string) error {
	fr.logger.Debugf("Add favorite of user: %s place: %s \n", userId, placeId)

	db := fr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	favorite := model.Favorite{UserID: userId, PlaceID: placeId}
	return db.WithContext(ctx).Model(&model.Favorite{}).Where(&model.Favorite{UserID: userId, PlaceID: placeId}).FirstOrCreate(&favorite).Error
}

func (fr *FavoriteRepository) Remove(ctx context.Context, tx *gorm.DB, userId string, placeId string) error {
	fr.logger.Debugf("Remove favorite of user: %s place: %s \n", userId, placeId)

	db := fr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where("user_id = ? AND place_id = ?", userId, placeId).Delete(&model.Favorite{}).Error
}

func (fr FavoriteRepository) Exists(ctx context.Context, tx *gorm.DB, userId string, placeId string) (bool, error) {
	fr.logger.Debugf("Check favorite of user: %s place: %s \n", userId, placeId)

	db := fr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var count int64
	if err := db.WithContext(ctx).Model(&model.Favorite{}).Where("user_id = ? AND place_id = ?", userId, placeId).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (fr FavoriteRepository) GetAllByUserId(ctx context.Context, tx *gorm.DB, userId string) ([]model.Favorite, error) {
	fr.logger.Debugf("Get favorites of user: %s \n", userId)

	db := fr.getDB(tx)
	var favorites []model.Favorite

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Favorite{}).Preload("Place").Where(&model.Favorite{UserID: userId}).Order("created_at DESC").Find(&favorites).Error; err != nil {
		return nil, err
	}

	return favorites, nil
}

func (fr *FavoriteRepository) DeleteAllByUserId(ctx context.Context, tx *gorm.DB, userId string) error {
	fr.logger.Debugf("Delete favorites of user: %s \n", userId)

	db := fr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.Favorite{}).Error
}
