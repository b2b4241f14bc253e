package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planventure/internal/api/controllers"
	"planventure/internal/models/request_models"
	"planventure/internal/models/response_models"
	"planventure/internal/services"
	"planventure/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockAccountService struct {
	registerFn            func(ctx context.Context, request request_models.SignUpRequest) (*response_models.RegisterResponse, error)
	loginFn               func(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	refreshFn             func(ctx context.Context, refreshToken string) (*response_models.TokenResponse, error)
	getProfileFn          func(ctx context.Context, userId string) (*response_models.UserResponse, error)
	changePasswordFn      func(ctx context.Context, userId string, request request_models.ChangePasswordRequest) error
	checkEmailAvailableFn func(ctx context.Context, email string) error
	validatePasswordFn    func(password string) response_models.PasswordValidationResponse
}

var _ services.AccountServiceInterface = (*mockAccountService)(nil)

func (m *mockAccountService) Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.RegisterResponse, error) {
	return m.registerFn(ctx, request)
}

func (m *mockAccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAccountService) Refresh(ctx context.Context, refreshToken string) (*response_models.TokenResponse, error) {
	return m.refreshFn(ctx, refreshToken)
}

func (m *mockAccountService) GetProfile(ctx context.Context, userId string) (*response_models.UserResponse, error) {
	return m.getProfileFn(ctx, userId)
}

func (m *mockAccountService) ChangePassword(ctx context.Context, userId string, request request_models.ChangePasswordRequest) error {
	return m.changePasswordFn(ctx, userId, request)
}

func (m *mockAccountService) CheckEmailAvailable(ctx context.Context, email string) error {
	return m.checkEmailAvailableFn(ctx, email)
}

func (m *mockAccountService) ValidatePassword(password string) response_models.PasswordValidationResponse {
	return m.validatePasswordFn(password)
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAuthController_ValidateEmail_Available(t *testing.T) {
	svc := &mockAccountService{
		checkEmailAvailableFn: func(ctx context.Context, email string) error {
			assert.Equal(t, "new@example.com", email)
			return nil
		},
	}

	r := gin.New()
	r.POST("/api/auth/validate-email", controllers.NewAuthController(svc).ValidateEmail)

	w := postJSON(r, "/api/auth/validate-email", `{"email":"new@example.com"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string                                   `json:"status"`
		Data   response_models.EmailValidationResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.True(t, resp.Data.Valid)
	assert.NotEmpty(t, resp.Data.Message)
}

func TestAuthController_ValidateEmail_Taken(t *testing.T) {
	svc := &mockAccountService{
		checkEmailAvailableFn: func(ctx context.Context, email string) error {
			return utils.ErrEmailAlreadyExists
		},
	}

	r := gin.New()
	r.POST("/api/auth/validate-email", controllers.NewAuthController(svc).ValidateEmail)

	w := postJSON(r, "/api/auth/validate-email", `{"email":"taken@example.com"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthController_ValidateEmail_BadPayload(t *testing.T) {
	r := gin.New()
	r.POST("/api/auth/validate-email", controllers.NewAuthController(&mockAccountService{}).ValidateEmail)

	w := postJSON(r, "/api/auth/validate-email", `{"email":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
