package model

// Review is a short, length-capped evaluation of a place. The character budget
// is enforced server side at binding time.
type Review struct {
	BaseModel
	UserID       string `gorm:"type:text;not null;index" json:"userId"`
	PlaceID      string `gorm:"type:text;not null;index" json:"placeId"`
	Content      string `gorm:"type:varchar(50);not null" json:"content" form:"content" binding:"required,max=50"`
	Rating       int    `gorm:"not null" json:"rating" form:"rating" binding:"required,gte=1,lte=5"`
	ImageURL     string `gorm:"type:text;default:null" json:"imageURL" form:"imageURL"`
	HelpfulCount int    `gorm:"not null;default:0" json:"helpfulCount"`

	User  User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Place Place `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (r Review) TableName() string {
	return "reviews"
}
