package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*

User is a registered member of the network

Id: primary key, generated server side on registration
CreatedAt: time when entity is created
DeletedAt: soft delete marker, users are never hard deleted

Email: login identifier, unique across the table
Password: bcrypt hash, never serialized into any response
PicturePath: asset store key of the profile image, empty when none uploaded
ViewedProfile / Impressions: cosmetic counters, randomized at registration
Friends: "many-to-many" self relation through UserFriendship, kept symmetric
         by the friend toggle operation

*/

type User struct {
	Id            string         `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
	FirstName     string         `json:"firstName"`
	LastName      string         `json:"lastName"`
	Email         string         `gorm:"uniqueIndex;not null" json:"email"`
	Password      string         `gorm:"not null" json:"-"`
	PicturePath   string         `json:"picturePath"`
	Location      string         `json:"location"`
	Occupation    string         `json:"occupation"`
	ViewedProfile int64          `json:"viewedProfile"`
	Impressions   int64          `json:"impressions"`
	Friends       []*User        `json:"friends,omitempty" gorm:"many2many:user_friendships;joinForeignKey:UserID;joinReferences:FriendID"`
}

func (u *User) BeforeCreate(db *gorm.DB) error {
	if u.Id == "" {
		u.Id = uuid.New().String()
	}
	return nil
}
