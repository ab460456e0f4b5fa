package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "forum-backend/internal/common/errors"
	"forum-backend/internal/common/middleware"
	"forum-backend/internal/features/user/models"
	"forum-backend/internal/features/user/service"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

func (h *UserHandler) RegisterRoutes(api *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	api.POST("/register", h.register)
	api.POST("/login", h.login)
	api.GET("/users/:username", h.publicProfile)

	profile := api.Group("/profile")
	profile.Use(requireAuth)
	{
		profile.GET("", h.profile)
		profile.PUT("", h.updateProfile)
		profile.POST("/avatar", h.uploadAvatar)
	}
}

func (h *UserHandler) register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, apperrors.New(apperrors.ErrCodeValidation, "username and password are required"))
		return
	}

	userID, err := h.service.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "registration successful", "userId": userID})
}

func (h *UserHandler) login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, apperrors.New(apperrors.ErrCodeValidation, "username and password are required"))
		return
	}

	token, user, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "login successful", "token": token, "user": user})
}

func (h *UserHandler) publicProfile(c *gin.Context) {
	profile, err := h.service.GetProfileByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) profile(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		middleware.AbortWithError(c, apperrors.New(apperrors.ErrCodeUnauthenticated, "authorization token required"))
		return
	}

	profile, err := h.service.GetProfileByID(c.Request.Context(), claims.UserID)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) updateProfile(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		middleware.AbortWithError(c, apperrors.New(apperrors.ErrCodeUnauthenticated, "authorization token required"))
		return
	}

	var req models.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, apperrors.New(apperrors.ErrCodeValidation, "username is required"))
		return
	}

	if err := h.service.UpdateProfile(c.Request.Context(), claims.UserID, req); err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}

func (h *UserHandler) uploadAvatar(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		middleware.AbortWithError(c, apperrors.New(apperrors.ErrCodeUnauthenticated, "authorization token required"))
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		middleware.AbortWithError(c, apperrors.New(apperrors.ErrCodeValidation, "avatar file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.AbortWithError(c, apperrors.Wrap(err, apperrors.ErrCodeStorage, "internal server error"))
		return
	}
	defer file.Close()

	avatarURL, err := h.service.SetAvatar(c.Request.Context(), claims.UserID, fileHeader.Filename, file)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "avatar updated", "avatarUrl": avatarURL})
}
