package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"planventure/internal/models/db_models"
	"planventure/internal/models/request_models"
	"planventure/internal/models/response_models"
	"planventure/internal/repositories"
	"planventure/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.RegisterResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*response_models.TokenResponse, error)
	GetProfile(ctx context.Context, userId string) (*response_models.UserResponse, error)
	ChangePassword(ctx context.Context, userId string, request request_models.ChangePasswordRequest) error
	CheckEmailAvailable(ctx context.Context, email string) error
	ValidatePassword(password string) response_models.PasswordValidationResponse
}

type AccountService struct {
	userRepo repositories.UserRepository
}

func NewAccountService(userRepo repositories.UserRepository) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.RegisterResponse, error) {

	email := strings.ToLower(strings.TrimSpace(request.Email))

	if !utils.ValidateEmailFormat(email) {
		return nil, fmt.Errorf("%w: invalid email format", utils.ErrInvalidInput)
	}

	existingUser, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existingUser != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	if request.Password != request.ConfirmPassword {
		return nil, utils.ErrPasswordMismatch
	}

	if ok, messages := utils.ValidatePasswordStrength(request.Password); !ok {
		return nil, fmt.Errorf("%w: %s", utils.ErrWeakPassword, strings.Join(messages, "; "))
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	newUser := &db_models.User{
		Email:        email,
		PasswordHash: hashedPassword,
		IsAdmin:      false,
		IsActive:     true,
	}

	if err := a.userRepo.InsertTx(newUser, ctx); err != nil {
		return nil, utils.ErrDatabaseError
	}

	tokens, err := issueTokens(newUser)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.RegisterResponse{
		User:   buildUserResponse(newUser),
		Tokens: *tokens,
	}, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {

	startTime := time.Now()

	email := strings.ToLower(strings.TrimSpace(request.Email))

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, utils.ErrAccountDisabled
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	log.Printf("Password verification took %s", time.Since(startTime))

	tokens, err := issueTokens(user)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{
		User:   buildUserResponse(user),
		Tokens: *tokens,
	}, nil
}

func (a *AccountService) Refresh(ctx context.Context, refreshToken string) (*response_models.TokenResponse, error) {

	claims, err := utils.ValidateToken(refreshToken)
	if err != nil {
		return nil, utils.ErrInvalidToken
	}
	if claims.TokenType != utils.TokenTypeRefresh {
		return nil, utils.ErrInvalidToken
	}

	user, err := a.userRepo.FindById(ctx, claims.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}
	if !user.IsActive {
		return nil, utils.ErrAccountDisabled
	}

	return issueTokens(user)
}

func (a *AccountService) GetProfile(ctx context.Context, userId string) (*response_models.UserResponse, error) {

	user, err := a.userRepo.FindById(ctx, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}

	resp := buildUserResponse(user)
	return &resp, nil
}

func (a *AccountService) ChangePassword(ctx context.Context, userId string, request request_models.ChangePasswordRequest) error {

	if request.NewPassword != request.ConfirmPassword {
		return utils.ErrPasswordMismatch
	}

	user, err := a.userRepo.FindById(ctx, userId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.CurrentPassword); err != nil {
		return utils.ErrWrongPassword
	}

	if ok, messages := utils.ValidatePasswordStrength(request.NewPassword); !ok {
		return fmt.Errorf("%w: %s", utils.ErrWeakPassword, strings.Join(messages, "; "))
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	user.PasswordHash = hashedPassword
	if err := a.userRepo.UpdateTx(user, ctx); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

// CheckEmailAvailable reports via sentinel errors whether email is usable for
// a new account: bad format or already taken both come back as errors.
func (a *AccountService) CheckEmailAvailable(ctx context.Context, email string) error {

	email = strings.ToLower(strings.TrimSpace(email))

	if !utils.ValidateEmailFormat(email) {
		return fmt.Errorf("%w: invalid email format", utils.ErrInvalidInput)
	}

	existingUser, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingUser != nil {
		return utils.ErrEmailAlreadyExists
	}

	return nil
}

func (a *AccountService) ValidatePassword(password string) response_models.PasswordValidationResponse {
	valid, messages := utils.ValidatePasswordStrength(password)
	return response_models.PasswordValidationResponse{
		Valid:    valid,
		Messages: messages,
	}
}

func issueTokens(user *db_models.User) (*response_models.TokenResponse, error) {
	accessToken, err := utils.CreateAccessToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, err
	}

	refreshToken, err := utils.CreateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &response_models.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    int64(utils.AccessTokenTTL.Seconds()),
		ExpiresAt:    time.Now().Add(utils.AccessTokenTTL).Format(time.RFC3339),
	}, nil
}

func buildUserResponse(user *db_models.User) response_models.UserResponse {
	return response_models.UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		IsAdmin:   user.IsAdmin,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
