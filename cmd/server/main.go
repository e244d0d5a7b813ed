package main

import (
	"net/http"

	"github.com/Luismorlan/sociomux/app_config"
	"github.com/Luismorlan/sociomux/file_store"
	"github.com/Luismorlan/sociomux/server"
	"github.com/Luismorlan/sociomux/server/middlewares"
	"github.com/Luismorlan/sociomux/utils"
	"github.com/Luismorlan/sociomux/utils/dotenv"
	Flag "github.com/Luismorlan/sociomux/utils/flag"
	Logger "github.com/Luismorlan/sociomux/utils/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func newAssetStore(cfg *app_config.ServerConfig) (file_store.AssetStore, error) {
	if cfg.S3Bucket != "" {
		return file_store.NewS3AssetStore(cfg.S3Bucket)
	}
	return file_store.NewLocalAssetStore(cfg.AssetsDir)
}

func main() {
	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}
	Flag.ParseFlags()
	Logger.InitLogger()

	cfg := app_config.LoadServerConfig()
	if cfg.JWTSecret == "" && !*Flag.ByPassAuth {
		Logger.Log.Fatal("JWT_SECRET must be set")
	}

	db, err := utils.GetDBConnection()
	if err != nil {
		Logger.Log.Fatal("fail to connect to database: ", err)
	}
	defer utils.CloseDBConnection(db)
	utils.DatabaseSetupAndMigration(db)

	store, err := newAssetStore(cfg)
	if err != nil {
		Logger.Log.Fatal("fail to initialize asset store: ", err)
	}

	// Default With the Logger and Recovery middleware already attached
	router := gin.Default()
	router.Use(cors.Default())
	router.Static("/assets", cfg.AssetsDir)

	verify := middlewares.TokenVerifier(cfg)
	if *Flag.ByPassAuth {
		verify = func(c *gin.Context) { c.Next() }
	}
	server.NewServer(db, cfg, store).RegisterRoutes(router, verify)

	// Debug route for testing and health check
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	Logger.Log.Info("api server starts up")
	router.Run(":" + cfg.Port)
}
