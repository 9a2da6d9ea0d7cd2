package model

// Favorite is a (user, place) membership row. A "like" vote implies one; users
// can also add favorites directly.
type Favorite struct {
	BaseModel
	UserID  string `gorm:"type:text;not null;uniqueIndex:idx_favorite_user_place" json:"userId"`
	PlaceID string `gorm:"type:text;not null;uniqueIndex:idx_favorite_user_place" json:"placeId"`

	User  User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Place Place `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"place"`
}

func (f Favorite) TableName() string {
	return "favorites"
}
