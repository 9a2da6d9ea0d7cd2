package model

// Profile holds application-specific user data, keyed by the same id as the
// owning User row. Created lazily after the first successful login.
type Profile struct {
	BaseModel
	Username             string  `gorm:"type:varchar(30);default:null" json:"username" form:"username"`
	PreferredLanguage    string  `gorm:"type:varchar(10);not null;default:'ko'" json:"preferredLanguage" form:"preferredLanguage"`
	InterestedCategories string  `gorm:"type:text;default:null" json:"interestedCategories" form:"interestedCategories"`
	LocationRadius       float64 `gorm:"not null;default:1000" json:"locationRadius" form:"locationRadius"`
}

func (p Profile) TableName() string {
	return "profiles"
}
