package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/flamtime/SomeNerts/internal/repository"
	"github.com/flamtime/SomeNerts/internal/services"
)

const authCookie = "auth_token"

// AuthHandler handles authentication operations
type AuthHandler struct {
	authService services.AuthService
	secure      bool
}

// NewAuthHandler creates a new auth handler. secure marks the auth cookie
// Secure regardless of the request scheme.
func NewAuthHandler(authService services.AuthService, secure bool) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		secure:      secure,
	}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents a token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Login authenticates the owner
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setAuthCookie(c, response.Token, response.ExpiresAt)
	c.JSON(http.StatusOK, response)
}

// Setup creates the owner account on a fresh install
func (h *AuthHandler) Setup(c *gin.Context) {
	var req repository.SetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.authService.Setup(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Owner account created",
		"user":    user,
	})
}

// RefreshToken exchanges a refresh token for a new token pair
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	response, err := h.authService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setAuthCookie(c, response.Token, response.ExpiresAt)
	c.JSON(http.StatusOK, response)
}

// Logout clears the auth cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(authCookie, "", -1, "/", "", h.isSecure(c), true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) setAuthCookie(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(authCookie, token, maxAge, "/", "", h.isSecure(c), true)
}

func (h *AuthHandler) isSecure(c *gin.Context) bool {
	return h.secure || c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https"
}
