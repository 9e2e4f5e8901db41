package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shiprecon/internal/domain"
	"shiprecon/internal/middleware"
	"shiprecon/internal/service"
	"shiprecon/mocks"
)

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(authSvc), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	authSvc.AssertNotCalled(t, "ValidateToken", mock.Anything)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	authSvc.On("ValidateToken", "bad-token").Return(nil, domain.ErrUnauthorized)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(authSvc), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidTokenInjectsUser(t *testing.T) {
	userID := uuid.New()
	authSvc := new(mocks.MockAuthService)
	authSvc.On("ValidateToken", "good-token").Return(&service.Claims{
		UserID:   userID,
		Username: "alice",
	}, nil)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	var gotUserID any
	var gotUsername any
	r.GET("/protected", middleware.AuthMiddleware(authSvc), func(c *gin.Context) {
		gotUserID, _ = c.Get(middleware.ContextKeyUserID)
		gotUsername, _ = c.Get(middleware.ContextKeyUsername)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, gotUserID)
	assert.Equal(t, "alice", gotUsername)
}
