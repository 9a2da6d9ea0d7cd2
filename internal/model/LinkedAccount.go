package model

// LinkedAccount binds one OAuth provider account to a User. One user may hold
// several linked accounts (google, kakao, naver) sharing the same email.
type LinkedAccount struct {
	BaseModel
	Provider          string `gorm:"type:varchar(50);not null;uniqueIndex:idx_provider_account" json:"provider" form:"provider" binding:"required"`
	ProviderAccountId string `gorm:"type:text;not null;uniqueIndex:idx_provider_account" json:"providerAccountId" form:"providerAccountId" binding:"required"`
	AccessToken       string `gorm:"type:text;default:null" json:"-"`
	RefreshToken      string `gorm:"type:text;default:null" json:"-"`
	ExpiresAt         int64  `gorm:"default:null" json:"-"`
	UserID            string `gorm:"type:text;not null;index" json:"userId" form:"userId"`

	User User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user" form:"user"`
}

func (la LinkedAccount) TableName() string {
	return "linked_accounts"
}
