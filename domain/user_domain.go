package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessGetMe          = "user profile retrieved successfully"
	MessageSuccessSendVerifyMail = "verification email sent successfully"
	MessageSuccessVerifyEmail    = "email verified successfully"
	MessageSuccessGetUsers       = "users retrieved successfully"
	MessageSuccessDeleteUser     = "user deleted successfully"
	MessageSuccessUpdateRole     = "user role updated successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetMe          = "failed to retrieve user profile"
	MessageFailedSendVerifyMail = "failed to send verification email"
	MessageFailedVerifyEmail    = "failed to verify email"
	MessageFailedGetUsers       = "failed to retrieve users"
	MessageFailedDeleteUser     = "failed to delete user"
	MessageFailedUpdateRole     = "failed to update user role"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotVerified   = errors.New("email not verified")
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,max=255"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	UserResponse struct {
		ID         string    `json:"id"`
		Username   string    `json:"username"`
		Email      string    `json:"email"`
		Role       string    `json:"role"`
		IsVerified bool      `json:"is_verified"`
		CreatedAt  time.Time `json:"created_at"`
	}

	SendVerificationEmailRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	UpdateRoleRequest struct {
		Role string `json:"role" validate:"required,oneof=user admin"`
	}
)
