package http

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"forum-backend/internal/auth"
	"forum-backend/internal/common/middleware"
	"forum-backend/internal/config"
	messagehttp "forum-backend/internal/features/message/delivery/http"
	messagesqlite "forum-backend/internal/features/message/repository/sqlite"
	messageservice "forum-backend/internal/features/message/service"
	userhttp "forum-backend/internal/features/user/delivery/http"
	usersqlite "forum-backend/internal/features/user/repository/sqlite"
	userservice "forum-backend/internal/features/user/service"
	"forum-backend/internal/storage/avatar"
)

// NewRouter builds the gin engine with all routes and middlewares wired.
func NewRouter(database *sql.DB, cfg *config.Config) (*gin.Engine, error) {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(), middleware.ErrorHandler())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.Server.Origin},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Uploaded avatars are served straight from disk.
	router.Static(cfg.Uploads.URLPrefix, cfg.Uploads.Dir)

	avatars, err := avatar.NewStore(cfg.Uploads.Dir, cfg.Uploads.URLPrefix)
	if err != nil {
		return nil, fmt.Errorf("avatar store: %w", err)
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	requireAuth := middleware.RequireAuth(tokens)

	userRepo := usersqlite.NewUserRepository(database)
	userSvc := userservice.NewUserService(userRepo, tokens, avatars)

	messageRepo := messagesqlite.NewMessageRepository(database)
	messageSvc := messageservice.NewMessageService(messageRepo)

	api := router.Group("/api")
	userhttp.NewUserHandler(userSvc).RegisterRoutes(api, requireAuth)
	messagehttp.NewMessageHandler(messageSvc).RegisterRoutes(api, requireAuth)

	return router, nil
}
