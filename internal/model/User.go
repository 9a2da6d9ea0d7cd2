package model

// User is the canonical identity independent of which OAuth provider was used
// to sign in. Email may be absent for providers that do not release it.
type User struct {
	BaseModel
	Email     string `gorm:"unique;type:citext;default:null" json:"email" form:"email"`
	Name      string `gorm:"type:varchar(60);not null" json:"name" form:"name"`
	AvatarURL string `gorm:"type:text;default:null" json:"avatarURL" form:"avatarURL"`
}

func (u User) TableName() string {
	return "users"
}
