package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/flamtime/SomeNerts/internal/errors"
	"github.com/flamtime/SomeNerts/internal/models"
	"github.com/flamtime/SomeNerts/internal/repository"
)

func setupAuthRouter(svc *mockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAuthHandler(svc, false)
	router.POST("/auth/login", h.Login)
	router.POST("/auth/setup", h.Setup)
	router.POST("/auth/refresh", h.RefreshToken)
	router.POST("/auth/logout", h.Logout)
	return router
}

func TestAuthHandler_Login(t *testing.T) {
	svc := new(mockAuthService)
	router := setupAuthRouter(svc)

	svc.On("Login", mock.Anything, "owner@example.com", "hunter22!").Return(&repository.LoginResponse{
		Token:     "access-token",
		ExpiresAt: time.Now().Add(time.Hour),
		User:      models.User{ID: uuid.New(), Email: "owner@example.com"},
	}, nil)
	svc.On("Login", mock.Anything, "owner@example.com", "nope").
		Return(nil, errors.Unauthorized("invalid credentials", nil))

	w := doJSON(router, "POST", "/auth/login", gin.H{"email": "owner@example.com", "password": "hunter22!"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "access-token", decode(t, w)["token"])

	cookies := w.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		assert.Equal(t, authCookie, cookies[0].Name)
		assert.Equal(t, "access-token", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	}

	w = doJSON(router, "POST", "/auth/login", gin.H{"email": "owner@example.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, errors.ErrCodeUnauthorized, decode(t, w)["code"])

	w = doJSON(router, "POST", "/auth/login", gin.H{"email": "not-an-email", "password": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Setup(t *testing.T) {
	svc := new(mockAuthService)
	router := setupAuthRouter(svc)

	svc.On("Setup", mock.Anything, &repository.SetupRequest{Email: "owner@example.com", Password: "hunter22!"}).
		Return(&models.User{ID: uuid.New(), Email: "owner@example.com", Role: "owner"}, nil).Once()
	svc.On("Setup", mock.Anything, mock.Anything).
		Return(nil, errors.Conflict("owner account already exists", nil))

	w := doJSON(router, "POST", "/auth/setup", gin.H{"email": "owner@example.com", "password": "hunter22!"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, "POST", "/auth/setup", gin.H{"email": "owner@example.com", "password": "hunter22!"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(router, "POST", "/auth/setup", gin.H{"email": "owner@example.com", "password": "short"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_RefreshAndLogout(t *testing.T) {
	svc := new(mockAuthService)
	router := setupAuthRouter(svc)

	svc.On("RefreshToken", mock.Anything, "bad").Return(nil, errors.Unauthorized("invalid refresh token", nil))

	w := doJSON(router, "POST", "/auth/refresh", gin.H{"refresh_token": "bad"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, "POST", "/auth/refresh", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, "POST", "/auth/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		assert.Equal(t, authCookie, cookies[0].Name)
		assert.True(t, cookies[0].MaxAge < 0)
	}
}
