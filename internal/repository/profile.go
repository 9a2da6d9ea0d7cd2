package repository

import (
	"context"

	constant "github.com/hyeonwoo/placepick/internal/constant"
	"github.com/hyeonwoo/placepick/internal/model"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	*baseRepository
}

func (pr ProfileRepository) GetById(ctx context.Context, tx *gorm.DB, userId string) (*model.Profile, error) {
	pr.logger.Debugf("Get profile by id: %s \n", userId)

	db := pr.getDB(tx)
	var profile *model.Profile

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Profile{}).Where(&model.Profile{BaseModel: model.BaseModel{ID: userId}}).First(&profile).Error; err != nil {
		return profile, err
	}

	return profile, nil
}

// EnsureExists lazily creates the profile row sharing the user's id.
func (pr *ProfileRepository) EnsureExists(ctx context.Context, tx *gorm.DB, userId string, username string) error {
	pr.logger.Debugf("Ensure profile exists for user: %s \n", userId)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Profile{}).Where(&model.Profile{BaseModel: model.BaseModel{ID: userId}}).FirstOrCreate(&model.Profile{
		BaseModel: model.BaseModel{ID: userId},
		Username:  username,
	}).Error
}

func (pr *ProfileRepository) Update(ctx context.Context, tx *gorm.DB, userId string, updates map[string]any) error {
	pr.logger.Debugf("Update profile: %s with %v \n", userId, updates)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Profile{}).Where("id = ?", userId).Updates(updates).Error
}

func (pr *ProfileRepository) DeleteById(ctx context.Context, tx *gorm.DB, userId string) error {
	pr.logger.Debugf("Delete profile by id: %s \n", userId)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where("id = ?", userId).Delete(&model.Profile{}).Error
}
