package model

import "time"

// Session is a server-persisted login credential. The browser only holds the
// opaque token; revoking the row logs the browser out.
type Session struct {
	BaseModel
	Token     string    `gorm:"unique;not null;type:text" json:"-"`
	UserID    string    `gorm:"type:text;not null;index" json:"userId"`
	ExpiresAt time.Time `gorm:"type:timestamptz;not null" json:"expiresAt"`

	User User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
}

func (s Session) TableName() string {
	return "sessions"
}
