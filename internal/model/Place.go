package model

// Place is a point of interest users swipe through. CreatedBy is the owning
// user; only the owner may update or delete the place.
type Place struct {
	BaseModel
	Name      string  `gorm:"type:varchar(100);not null" json:"name" form:"name" binding:"required"`
	Category  string  `gorm:"type:varchar(50);not null;index" json:"category" form:"category" binding:"required"`
	Address   string  `gorm:"type:text;not null" json:"address" form:"address" binding:"required"`
	Phone     string  `gorm:"type:varchar(30);default:null" json:"phone" form:"phone"`
	Latitude  float64 `gorm:"not null" json:"latitude" form:"latitude" binding:"required,latitude"`
	Longitude float64 `gorm:"not null" json:"longitude" form:"longitude" binding:"required,longitude"`
	ImageURL  string  `gorm:"type:text;default:null" json:"imageURL" form:"imageURL"`
	CreatedBy string  `gorm:"type:text;not null;index" json:"createdBy"`
}

func (p Place) TableName() string {
	return "places"
}
