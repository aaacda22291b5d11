package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"invensight/internal/middleware"
	"invensight/internal/service"
	"invensight/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authTestRouter(authSvc service.AuthService) *gin.Engine {
	r := gin.New()
	r.Use(middleware.AuthMiddleware(authSvc))
	r.GET("/protected", func(c *gin.Context) {
		userID, err := middleware.GetUserID(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	return r
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	mockSvc := new(mocks.MockAuthService)
	r := authTestRouter(mockSvc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockSvc.AssertNotCalled(t, "ValidateToken", "")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	mockSvc := new(mocks.MockAuthService)
	r := authTestRouter(mockSvc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", http.NoBody)
	req.Header.Set("Authorization", "Token abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	mockSvc := new(mocks.MockAuthService)
	mockSvc.On("ValidateToken", "bad-token").Return(nil, assert.AnError)
	r := authTestRouter(mockSvc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", http.NoBody)
	req.Header.Set("Authorization", "Bearer bad-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	mockSvc := new(mocks.MockAuthService)
	userID := uuid.New()
	mockSvc.On("ValidateToken", "good-token").Return(&service.Claims{
		UserID: userID,
		Email:  "ada@example.com",
	}, nil)
	r := authTestRouter(mockSvc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", http.NoBody)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
	mockSvc.AssertExpectations(t)
}
