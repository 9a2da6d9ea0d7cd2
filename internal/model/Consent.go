package model

// Consent records terms/privacy agreement. Keyed by email rather than user id
// because consent is captured before the identity row may exist.
type Consent struct {
	BaseModel
	Email          string `gorm:"type:citext;not null;index" json:"email" form:"email" binding:"required"`
	TermsAgreed    bool   `gorm:"not null;default:false" json:"termsAgreed" form:"termsAgreed"`
	PrivacyAgreed  bool   `gorm:"not null;default:false" json:"privacyAgreed" form:"privacyAgreed"`
	MarketingAgree bool   `gorm:"not null;default:false" json:"marketingAgree" form:"marketingAgree"`
}

func (c Consent) TableName() string {
	return "consents"
}
