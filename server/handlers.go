package server

import (
	"github.com/Luismorlan/sociomux/app_config"
	"github.com/Luismorlan/sociomux/file_store"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Server holds every dependency the handlers need.
// It serves as dependency injection for your app, add any dependencies you require here.
type Server struct {
	DB    *gorm.DB
	Cfg   *app_config.ServerConfig
	Store file_store.AssetStore
}

func NewServer(db *gorm.DB, cfg *app_config.ServerConfig, store file_store.AssetStore) *Server {
	return &Server{DB: db, Cfg: cfg, Store: store}
}

// RegisterRoutes attaches all resource routes to the router. verify gates the
// protected groups; pass a pass-through handler to bypass auth in development.
func (s *Server) RegisterRoutes(router *gin.Engine, verify gin.HandlerFunc) {
	auth := router.Group("/auth")
	auth.POST("/register", s.Register)
	auth.POST("/login", s.Login)

	users := router.Group("/users", verify)
	users.GET("/:id", s.GetUser)
	users.GET("/:id/friends", s.GetUserFriends)
	users.PATCH("/:id/:friendId", s.AddRemoveFriend)

	posts := router.Group("/posts", verify)
	posts.POST("", s.CreatePost)
	posts.GET("", s.GetFeedPosts)
	posts.GET("/:id/posts", s.GetUserPosts)
	posts.PATCH("/:id/like", s.LikePost)
	posts.POST("/:id/comment", s.CommentPost)
}
