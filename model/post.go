package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/*

Post is a piece of content a user published

Id: primary key, generated server side on creation
CreatedAt: time when entity is created
DeletedAt: soft delete marker, posts are never hard deleted in scope

UserID: author's user id, "belongs-to" relation
FirstName, LastName, Location, UserPicturePath:
		author fields denormalized at write time so the feed renders without a
		join. Not kept in sync with later profile edits.

Description: post's body in plain text
PicturePath: asset store key of the attached image, empty when none uploaded

Likes: JSONB map from user id to true, functions as the set of users who
       liked the post
Comments: JSONB array of Comment, appended in place

Cursor: The auto-inc global-unique index to keep the relative order of posts

*/

type Post struct {
	Id              string            `gorm:"primaryKey" json:"id"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt    `gorm:"index" json:"-"`
	UserID          string            `gorm:"index;not null" json:"userId"`
	FirstName       string            `json:"firstName"`
	LastName        string            `json:"lastName"`
	Location        string            `json:"location"`
	Description     string            `json:"description"`
	PicturePath     string            `json:"picturePath"`
	UserPicturePath string            `json:"userPicturePath"`
	Likes           datatypes.JSONMap `json:"likes"`
	Comments        datatypes.JSON    `json:"comments"`
	Cursor          int32             `gorm:"autoIncrement;uniqueIndex" json:"cursor"`
}

// Comment is one element of Post.Comments.
type Comment struct {
	UserID    string    `json:"userId"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

func (p *Post) BeforeCreate(db *gorm.DB) error {
	if p.Id == "" {
		p.Id = uuid.New().String()
	}
	if p.Likes == nil {
		p.Likes = datatypes.JSONMap{}
	}
	if len(p.Comments) == 0 {
		p.Comments = datatypes.JSON([]byte("[]"))
	}
	return nil
}

// ToggleLike flips userId's membership in the like map and returns true if
// the post is liked by the user after the call.
func (p *Post) ToggleLike(userId string) bool {
	if p.Likes == nil {
		p.Likes = datatypes.JSONMap{}
	}
	if _, ok := p.Likes[userId]; ok {
		delete(p.Likes, userId)
		return false
	}
	p.Likes[userId] = true
	return true
}

// AppendComment adds a comment to the JSONB comment list.
func (p *Post) AppendComment(c Comment) error {
	var comments []Comment
	if len(p.Comments) > 0 {
		if err := json.Unmarshal(p.Comments, &comments); err != nil {
			return err
		}
	}
	comments = append(comments, c)
	raw, err := json.Marshal(comments)
	if err != nil {
		return err
	}
	p.Comments = datatypes.JSON(raw)
	return nil
}
