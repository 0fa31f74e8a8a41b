package handler

import (
	"ProtectAdmin/internal/api/dto"
	"ProtectAdmin/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of service.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	args := m.Called(ctx, token, newPassword)
	return args.Error(0)
}

var _ service.AuthService = (*MockAuthService)(nil)

func setupAuthRouter(svc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(svc)
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/password/forgot", h.ForgotPassword)
	return r
}

func performJSON(r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginHandler(t *testing.T) {
	mockSvc := new(MockAuthService)
	mockSvc.On("Login", mock.Anything, "admin@grupoprotect.com.br", "senha123").
		Return("jwt-token", nil)

	r := setupAuthRouter(mockSvc)
	w := performJSON(r, http.MethodPost, "/api/auth/login", gin.H{
		"email": "admin@grupoprotect.com.br",
		"senha": "senha123",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var res dto.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 200, res.Code)
	assert.Equal(t, map[string]interface{}{"token": "jwt-token"}, res.Data)
}

func TestLoginHandler_BadCredentials(t *testing.T) {
	mockSvc := new(MockAuthService)
	mockSvc.On("Login", mock.Anything, "admin@grupoprotect.com.br", "errada").
		Return("", service.ErrBadCredentials)

	r := setupAuthRouter(mockSvc)
	w := performJSON(r, http.MethodPost, "/api/auth/login", gin.H{
		"email": "admin@grupoprotect.com.br",
		"senha": "errada",
	})

	// business code travels in the body, HTTP status stays 200
	assert.Equal(t, http.StatusOK, w.Code)

	var res dto.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 401, res.Code)
	assert.Equal(t, service.ErrBadCredentials.Error(), res.Message)
}

func TestLoginHandler_MissingFields(t *testing.T) {
	mockSvc := new(MockAuthService)

	r := setupAuthRouter(mockSvc)
	w := performJSON(r, http.MethodPost, "/api/auth/login", gin.H{
		"email": "not-an-email",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var res dto.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 400, res.Code)
	mockSvc.AssertNotCalled(t, "Login")
}

func TestForgotPasswordHandler_UnknownEmail(t *testing.T) {
	mockSvc := new(MockAuthService)
	mockSvc.On("ForgotPassword", mock.Anything, "nobody@example.com").
		Return(service.ErrEmailNotRegistered)

	r := setupAuthRouter(mockSvc)
	w := performJSON(r, http.MethodPost, "/api/auth/password/forgot", gin.H{
		"email": "nobody@example.com",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var res dto.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 404, res.Code)
}
