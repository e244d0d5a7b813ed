package server

import (
	"net/http"

	"github.com/Luismorlan/sociomux/model"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// friendView is the trimmed user projection returned from the friend routes,
// enough for the client to render a friend card without leaking the full
// profile record.
type friendView struct {
	Id          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Occupation  string `json:"occupation"`
	Location    string `json:"location"`
	PicturePath string `json:"picturePath"`
}

// GetUser handles GET /users/:id.
func (s *Server) GetUser(c *gin.Context) {
	var user model.User
	if err := s.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUserFriends handles GET /users/:id/friends.
func (s *Server) GetUserFriends(c *gin.Context) {
	s.respondFriendList(c, c.Param("id"))
}

// AddRemoveFriend handles PATCH /users/:id/:friendId. Toggles the friendship
// in both directions so the relation stays symmetric, then returns :id's
// updated friend list.
func (s *Server) AddRemoveFriend(c *gin.Context) {
	id, friendId := c.Param("id"), c.Param("friendId")
	if id == friendId {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot befriend yourself"})
		return
	}

	var user, friend model.User
	if err := s.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := s.DB.First(&friend, "id = ?", friendId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "friend not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var count int64
	if err := s.DB.Model(&model.UserFriendship{}).
		Where("user_id = ? AND friend_id = ?", user.Id, friend.Id).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if count > 0 {
		if err := s.DB.Model(&user).Association("Friends").Delete(&friend); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if err := s.DB.Model(&friend).Association("Friends").Delete(&user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	} else {
		if err := s.DB.Model(&user).Association("Friends").Append(&friend); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if err := s.DB.Model(&friend).Association("Friends").Append(&user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	s.respondFriendList(c, id)
}

func (s *Server) respondFriendList(c *gin.Context, userId string) {
	var user model.User
	if err := s.DB.Preload("Friends").First(&user, "id = ?", userId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	views := []friendView{}
	if err := copier.Copy(&views, user.Friends); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, views)
}
