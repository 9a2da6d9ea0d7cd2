package repository

import (
	"context"

	constant "github.com/hyeonwoo/placepick/internal/constant"
	"github.com/hyeonwoo/placepick/internal/model"
	"gorm.io/gorm"
)

type ConsentRepository struct {
	*baseRepository
}

// Upsert records agreement keyed by email, creating the row on first login.
func (cr *ConsentRepository) Upsert(ctx context.Context, tx *gorm.DB, newConsent model.Consent) error {
	cr.logger.Debugf("Upsert consent for email: %s \n", newConsent.Email)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Consent{}).Where(&model.Consent{Email: newConsent.Email}).Assign(model.Consent{
		Email:          newConsent.Email,
		TermsAgreed:    newConsent.TermsAgreed,
		PrivacyAgreed:  newConsent.PrivacyAgreed,
		MarketingAgree: newConsent.MarketingAgree,
	}).FirstOrCreate(&newConsent).Error
}

func (cr ConsentRepository) GetByEmail(ctx context.Context, tx *gorm.DB, email string) ([]model.Consent, error) {
	cr.logger.Debugf("Get consents by email: %s \n", email)

	db := cr.getDB(tx)
	var consents []model.Consent

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Consent{}).Where(&model.Consent{Email: email}).Find(&consents).Error; err != nil {
		return nil, err
	}

	return consents, nil
}

func (cr *ConsentRepository) DeleteByEmail(ctx context.Context, tx *gorm.DB, email string) error {
	cr.logger.Debugf("Delete consents by email: %s \n", email)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where("email = ?", email).Delete(&model.Consent{}).Error
}
