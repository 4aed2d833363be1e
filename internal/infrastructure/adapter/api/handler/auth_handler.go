package handler

import (
	"fmt"
	"net/http"

	domainerr "github.com/amirhossein-jamali/currency-detector/internal/domain/error"
	coreport "github.com/amirhossein-jamali/currency-detector/internal/domain/port/core"
	"github.com/amirhossein-jamali/currency-detector/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/currency-detector/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/currency-detector/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles account and authentication HTTP requests
type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authUseCase usecase.AuthUseCase, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// Register handles the POST /auth/register endpoint
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Invalid register request format", map[string]any{
			"error": err.Error(),
		})
		middleware.AbortWithError(c, fmt.Errorf("%w: %s", domainerr.ErrInvalidRequest, err.Error()))
		return
	}

	user, err := h.authUseCase.Register(c.Request.Context(), usecase.RegisterRequest{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// Login handles the POST /auth/login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, fmt.Errorf("%w: %s", domainerr.ErrInvalidRequest, err.Error()))
		return
	}

	token, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
	})
}

// Me handles the GET /auth/me endpoint
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewMeResponse(middleware.CurrentUser(c)))
}

// DeleteProfile handles the DELETE /auth/me endpoint
func (h *AuthHandler) DeleteProfile(c *gin.Context) {
	if err := h.authUseCase.DeleteProfile(c.Request.Context(), middleware.CurrentUser(c)); err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Profile deleted successfully"})
}
