package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Luismorlan/sociomux/model"
	"github.com/Luismorlan/sociomux/server/middlewares"
	Logger "github.com/Luismorlan/sociomux/utils/log"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	defaultFeedLimit = 20
	maxFeedLimit     = 100
)

// CreatePost handles POST /posts. Multipart form with "description" plus an
// optional "picture" file. The author is always the verified caller, never a
// form field. Author display fields are denormalized onto the post at write
// time. Responds 201 with the created post only; listing is GetFeedPosts.
func (s *Server) CreatePost(c *gin.Context) {
	userId := middlewares.UserId(c)

	var user model.User
	if err := s.DB.First(&user, "id = ?", userId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	picturePath := ""
	if file, header, err := c.Request.FormFile("picture"); err == nil {
		defer file.Close()
		key, err := s.Store.Store(file, userId, header.Filename)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		picturePath = key
	}

	post := model.Post{
		UserID:          user.Id,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Location:        user.Location,
		Description:     c.PostForm("description"),
		PicturePath:     picturePath,
		UserPicturePath: user.PicturePath,
	}

	if err := s.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	Logger.Log.WithField("post_id", post.Id).Info("post created")
	c.JSON(http.StatusCreated, post)
}

// GetFeedPosts handles GET /posts. Cursor paginated, newest first:
// ?limit= caps the page size, ?before= continues from a previous page's
// "next" value.
func (s *Server) GetFeedPosts(c *gin.Context) {
	s.listPosts(c, s.DB)
}

// GetUserPosts handles GET /posts/:id/posts, the posts of a single author
// with the same pagination as the feed.
func (s *Server) GetUserPosts(c *gin.Context) {
	s.listPosts(c, s.DB.Where("user_id = ?", c.Param("id")))
}

func (s *Server) listPosts(c *gin.Context, q *gorm.DB) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultFeedLimit)))
	if err != nil || limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}

	if before, err := strconv.Atoi(c.Query("before")); err == nil && before > 0 {
		q = q.Where("cursor < ?", before)
	}

	var posts []model.Post
	if err := q.Order("cursor desc").Limit(limit).Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// next is 0 on the last page.
	var next int32
	if len(posts) == limit {
		next = posts[len(posts)-1].Cursor
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts, "next": next})
}

// LikePost handles PATCH /posts/:id/like. Toggles the caller's id in the like
// map and returns the updated post.
func (s *Server) LikePost(c *gin.Context) {
	var post model.Post
	if err := s.DB.First(&post, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	post.ToggleLike(middlewares.UserId(c))
	if err := s.DB.Save(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, post)
}

type commentRequest struct {
	Comment string `json:"comment" binding:"required"`
}

// CommentPost handles POST /posts/:id/comment. Appends the caller's comment
// to the post's comment list and returns the updated post.
func (s *Server) CommentPost(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var post model.Post
	if err := s.DB.First(&post, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	comment := model.Comment{
		UserID:    middlewares.UserId(c),
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}
	if err := post.AppendComment(comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := s.DB.Save(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, post)
}
