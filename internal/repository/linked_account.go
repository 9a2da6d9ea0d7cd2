package repository

import (
	"context"

	constant "github.com/hyeonwoo/placepick/internal/constant"
	"github.com/hyeonwoo/placepick/internal/model"
	"gorm.io/gorm"
)

type LinkedAccountRepository struct {
	*baseRepository
}

func (lar LinkedAccountRepository) GetByProviderAccount(ctx context.Context, tx *gorm.DB, provider string, providerAccountId string) (*model.LinkedAccount, error) {
	lar.logger.Debugf("Get linked account by provider: %s account id: %s \n", provider, providerAccountId)

	db := lar.getDB(tx)
	var account *model.LinkedAccount

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.LinkedAccount{}).Where(&model.LinkedAccount{Provider: provider, ProviderAccountId: providerAccountId}).First(&account).Error; err != nil {
		return account, err
	}

	return account, nil
}

func (lar LinkedAccountRepository) GetAllByUserId(ctx context.Context, tx *gorm.DB, userId string) ([]model.LinkedAccount, error) {
	lar.logger.Debugf("Get linked accounts of user: %s \n", userId)

	db := lar.getDB(tx)
	var accounts []model.LinkedAccount

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.LinkedAccount{}).Where(&model.LinkedAccount{UserID: userId}).Find(&accounts).Error; err != nil {
		return nil, err
	}

	return accounts, nil
}

func (lar *LinkedAccountRepository) Create(ctx context.Context, tx *gorm.DB, newAccount model.LinkedAccount) error {
	lar.logger.Debugf("Create linked account with data: %v \n", newAccount)

	db := lar.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.LinkedAccount{}).Create(&model.LinkedAccount{
		Provider:          newAccount.Provider,
		ProviderAccountId: newAccount.ProviderAccountId,
		AccessToken:       newAccount.AccessToken,
		RefreshToken:      newAccount.RefreshToken,
		ExpiresAt:         newAccount.ExpiresAt,
		UserID:            newAccount.UserID,
	}).Error
}

// UpdateTokens stores the freshest provider tokens on re-login so a later
// unlink call does not work with stale credentials.
func (lar *LinkedAccountRepository) UpdateTokens(ctx context.Context, tx *gorm.DB, accountId string, accessToken string, refreshToken string, expiresAt int64) error {
	lar.logger.Debugf("Update tokens of linked account: %s \n", accountId)

	db := lar.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	updates := map[string]any{
		"access_token": accessToken,
		"expires_at":   expiresAt,
	}
	// Some providers only hand out a refresh token on the first consent.
	if refreshToken != "" {
		updates["refresh_token"] = refreshToken
	}

	return db.WithContext(ctx).Model(&model.LinkedAccount{}).Where("id = ?", accountId).Updates(updates).Error
}

func (lar *LinkedAccountRepository) DeleteAllByUserId(ctx context.Context, tx *gorm.DB, userId string) error {
	lar.logger.Debugf("Delete linked accounts of user: %s \n", userId)

	db := lar.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.LinkedAccount{}).Error
}
