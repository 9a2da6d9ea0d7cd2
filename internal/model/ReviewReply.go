package model

type ReviewReply struct {
	BaseModel
	ReviewID string `gorm:"type:text;not null;index" json:"reviewId"`
	UserID   string `gorm:"type:text;not null;index" json:"userId"`
	Content  string `gorm:"type:varchar(200);not null" json:"content" form:"content" binding:"required,max=200"`

	Review Review `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
}

func (rr ReviewReply) TableName() string {
	return "review_replies"
}
