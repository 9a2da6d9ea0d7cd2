package model

import "github.com/hyeonwoo/placepick/internal/constant"

// Notification is an in-app message created as a side effect of review and
// reply activity. URL is an optional deep link.
type Notification struct {
	BaseModel
	UserID  string                    `gorm:"type:text;not null;index" json:"userId"`
	Type    constant.NotificationType `gorm:"type:varchar(20);not null" json:"type"`
	Message string                    `gorm:"type:text;not null" json:"message"`
	URL     string                    `gorm:"type:text;default:null" json:"url"`
	IsRead  bool                      `gorm:"not null;default:false" json:"isRead"`

	User User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (n Notification) TableName() string {
	return "notifications"
}
