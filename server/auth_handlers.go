package server

import (
	"math/rand"
	"net/http"

	"github.com/Luismorlan/sociomux/model"
	"github.com/Luismorlan/sociomux/utils"
	Logger "github.com/Luismorlan/sociomux/utils/log"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Upper bound for the randomized cosmetic profile counters.
const maxCosmeticCount = 10000

// Register handles POST /auth/register. Multipart form with the profile
// fields plus an optional "picture" file. The picture is written to the asset
// store under a server generated key, the password is bcrypt hashed, and the
// created user is returned with status 201. A duplicate email surfaces as 409
// through the unique index on users.email, there is no pre-check.
func (s *Server) Register(c *gin.Context) {
	firstName := c.PostForm("firstName")
	lastName := c.PostForm("lastName")
	email := c.PostForm("email")
	password := c.PostForm("password")

	if email == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	picturePath := ""
	if file, header, err := c.Request.FormFile("picture"); err == nil {
		defer file.Close()
		key, err := s.Store.Store(file, email, header.Filename)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		picturePath = key
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.Cfg.BcryptCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	user := model.User{
		FirstName:     firstName,
		LastName:      lastName,
		Email:         email,
		Password:      string(hash),
		PicturePath:   picturePath,
		Location:      c.PostForm("location"),
		Occupation:    c.PostForm("occupation"),
		ViewedProfile: rand.Int63n(maxCosmeticCount),
		Impressions:   rand.Int63n(maxCosmeticCount),
	}

	if err := s.DB.Create(&user).Error; err != nil {
		if utils.IsDuplicateKeyError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	Logger.Log.WithField("user_id", user.Id).Info("user registered")
	c.JSON(http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login. A single error message covers both unknown
// email and wrong password so the endpoint can't be used to enumerate users.
func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user model.User
	if err := s.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	token, err := utils.NewUserToken(user.Id, s.Cfg.JWTSecret, s.Cfg.TokenExpiration)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
