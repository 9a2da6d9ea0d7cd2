package model

import "github.com/hyeonwoo/placepick/internal/constant"

// Vote is one user's like/no judgement on one place. At most one row exists
// per (user, place); casting again upserts.
type Vote struct {
	BaseModel
	UserID   string            `gorm:"type:text;not null;uniqueIndex:idx_vote_user_place" json:"userId"`
	PlaceID  string            `gorm:"type:text;not null;uniqueIndex:idx_vote_user_place" json:"placeId"`
	VoteType constant.VoteType `gorm:"type:varchar(10);not null" json:"voteType"`

	User  User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Place Place `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (v Vote) TableName() string {
	return "votes"
}
