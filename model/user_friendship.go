package model

import (
	"time"

	"gorm.io/gorm"
)

/*

UserFriendship is a "many-to-many" self relation of user befriends user

UserID: user id
FriendID: the befriended user's id
CreatedAt: time when relation is created

Rows are added and removed in pairs by the friend toggle so the relation
stays symmetric.

*/

type UserFriendship struct {
	UserID    string `gorm:"primaryKey"`
	FriendID  string `gorm:"primaryKey"`
	CreatedAt time.Time
}

func (UserFriendship) BeforeCreate(db *gorm.DB) error {
	return nil
}
