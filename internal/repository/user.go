package repository

import (
	"context"

	constant "github.com/hyeonwoo/placepick/internal/constant"
	"github.com/hyeonwoo/placepick/internal/model"
	"gorm.io/gorm"
)

type UserRepository struct {
	*baseRepository
}

func (ur UserRepository) GetById(ctx context.Context, tx *gorm.DB, userId string) (*model.User, error) {
	ur.logger.Debugf("Get user by id: %s \n", userId)

	db := ur.getDB(tx)
	var user *model.User

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.User{}).Where(&model.User{BaseModel: model.BaseModel{ID: userId}}).First(&user).Error; err != nil {
		return user, err
	}

	return user, nil
}

func (ur UserRepository) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*model.User, error) {
	ur.logger.Debugf("Get user by email: %s \n", email)

	db := ur.getDB(tx)
	var user *model.User

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.User{}).Where(&model.User{Email: email}).First(&user).Error; err != nil {
		return user, err
	}

	return user, nil
}

func (ur *UserRepository) Create(ctx context.Context, tx *gorm.DB, newUser model.User) (*model.User, error) {
	ur.logger.Debugf("Create user with data: %v \n", newUser)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	user := model.User{
		Email:     newUser.Email,
		Name:      newUser.Name,
		AvatarURL: newUser.AvatarURL,
	}
	if err := db.WithContext(ctx).Model(&model.User{}).Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// UpdateProfileClaims refreshes name and avatar from the latest OAuth claims.
func (ur *UserRepository) UpdateProfileClaims(ctx context.Context, tx *gorm.DB, userId string, name string, avatarURL string) error {
	ur.logger.Debugf("Update user %s claims name: %s \n", userId, name)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	updates := map[string]any{}
	if name != "" {
		updates["name"] = name
	}
	if avatarURL != "" {
		updates["avatar_url"] = avatarURL
	}
	if len(updates) == 0 {
		return nil
	}

	return db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userId).Updates(updates).Error
}

func (ur *UserRepository) DeleteById(ctx context.Context, tx *gorm.DB, userId string) error {
	ur.logger.Debugf("Delete user by id: %s \n", userId)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where("id = ?", userId).Delete(&model.User{}).Error
}
