// internal/handlers/auth/auth_handler.go
package auth

import (
	"net/http"

	"gari-service/internal/domain/auth"
	"gari-service/internal/middleware"
	"gari-service/internal/pkg/response"
	service "gari-service/internal/service/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new account
func (h *AuthHandler) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	result, err := h.authService.Register(c.Request.Context(), &req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		response.FromServiceError(c, "failed to register", err)
		return
	}

	response.Success(c, http.StatusCreated, "account created successfully", result)
}

// Login authenticates a user
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		response.FromServiceError(c, "invalid email or password", err)
		return
	}

	response.Success(c, http.StatusOK, "logged in successfully", result)
}

// Logout revokes the current session
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := middleware.MustGetUserID(c)
	jti, _ := middleware.GetJTI(c)

	if err := h.authService.Logout(c.Request.Context(), userID, jti); err != nil {
		response.FromServiceError(c, "failed to log out", err)
		return
	}

	response.Success(c, http.StatusOK, "logged out successfully", nil)
}

// LogoutAll revokes every session of the caller
func (h *AuthHandler) LogoutAll(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	if err := h.authService.LogoutAll(c.Request.Context(), userID); err != nil {
		response.FromServiceError(c, "failed to log out", err)
		return
	}

	response.Success(c, http.StatusOK, "all sessions revoked", nil)
}

// GetMe returns the caller's profile
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	user, err := h.authService.GetMe(c.Request.Context(), userID)
	if err != nil {
		response.FromServiceError(c, "user not found", err)
		return
	}

	response.Success(c, http.StatusOK, "profile retrieved", user)
}
