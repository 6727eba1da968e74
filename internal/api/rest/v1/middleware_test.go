//go:build unit
// +build unit

package v1

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	mockAuthService := new(MockAuthService)

	r := gin.New()
	r.GET("/ping", AuthMiddleware(mockAuthService), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockAuthService.AssertNotCalled(t, "Authenticate")
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	mockAuthService := new(MockAuthService)
	identity := newTestIdentity(users.RoleEmployee)

	mockAuthService.
		On("Authenticate", mock.Anything, "plain-token-value").
		Return(identity, nil)

	r := gin.New()
	r.GET("/ping", AuthMiddleware(mockAuthService), func(c *gin.Context) {
		resolved := currentIdentity(c)
		assert.NotNil(t, resolved)
		assert.Equal(t, identity.UserID, resolved.UserID)

		fromRequest, ok := users.IdentityFromContext(c.Request.Context())
		assert.True(t, ok)
		assert.Equal(t, identity.UserID, fromRequest.UserID)

		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	req.Header.Set("Authorization", "Bearer plain-token-value")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockAuthService.AssertExpectations(t)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	mockAuthService := new(MockAuthService)

	mockAuthService.
		On("Authenticate", mock.Anything, "expired-token").
		Return(nil, users.ErrInvalidCredentials)

	r := gin.New()
	r.GET("/ping", AuthMiddleware(mockAuthService), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockAuthService.AssertExpectations(t)
}

func TestRequireAdmin_EmployeeForbidden(t *testing.T) {
	mockAuthService := new(MockAuthService)
	identity := newTestIdentity(users.RoleEmployee)

	mockAuthService.
		On("Authenticate", mock.Anything, mock.Anything).
		Return(identity, nil)

	r := gin.New()
	r.GET("/admin-only", AuthMiddleware(mockAuthService), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer plain-token-value")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_AdminAllowed(t *testing.T) {
	mockAuthService := new(MockAuthService)
	identity := newTestIdentity(users.RoleAdmin)

	mockAuthService.
		On("Authenticate", mock.Anything, mock.Anything).
		Return(identity, nil)

	r := gin.New()
	r.GET("/admin-only", AuthMiddleware(mockAuthService), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer plain-token-value")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService)

	token := &users.ApiToken{
		ID:        uuid.New().String(),
		UserID:    uuid.New().String(),
		LicenseID: uuid.New().String(),
		Name:      "login",
		ExpiresAt: time.Now().AddDate(0, 0, 90),
		CreatedAt: time.Now(),
	}

	mockAuthService.
		On("Login", mock.Anything, "ansatt@byraa.no", "hemmelig-passord", "").
		Return("plain-token-value", token, nil)

	requestBody := `{"email": "ansatt@byraa.no", "password": "hemmelig-passord"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "plain-token-value")
	mockAuthService.AssertExpectations(t)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService)

	mockAuthService.
		On("Login", mock.Anything, "ansatt@byraa.no", "feil-passord", "").
		Return("", nil, users.ErrInvalidCredentials)

	requestBody := `{"email": "ansatt@byraa.no", "password": "feil-passord"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockAuthService.AssertExpectations(t)
}

func TestAuthHandler_IssueToken_OtherUserForbidden(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService)
	identity := newTestIdentity(users.RoleEmployee)

	requestBody := `{"userId": "` + uuid.New().String() + `", "name": "ci-token"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/tokens", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c := newAuthedTestContext(w, req, identity)
	handler.IssueToken(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockAuthService.AssertNotCalled(t, "IssueToken")
}
