package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rubeenavs/foodwise/domain"
	"github.com/rubeenavs/foodwise/entities"
	"github.com/rubeenavs/foodwise/internal/utils"
	"github.com/rubeenavs/foodwise/internal/utils/mailing"
	"github.com/rubeenavs/foodwise/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) error
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		SendVerificationEmail(ctx context.Context, req domain.SendVerificationEmailRequest) error
		VerifyEmail(ctx context.Context, token string) error
		GetUsers(ctx context.Context) ([]domain.UserResponse, error)
		DeleteUser(ctx context.Context, id string) error
		UpdateRole(ctx context.Context, id string, role string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) error {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		Role:     domain.RoleUser,
	}

	return s.userRepository.CreateUser(ctx, user)
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	return domain.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) SendVerificationEmail(ctx context.Context, req domain.SendVerificationEmailRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	token, err := s.jwtService.GenerateTokenWithClaims(map[string]any{
		"user_id": user.ID.String(),
		"email":   user.Email,
	}, 24*time.Hour)
	if err != nil {
		return err
	}

	verifyURL := fmt.Sprintf("%s/api/v1/users/verify?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Please verify your FoodWise account by clicking <a href=%q>this link</a>.</p>",
		user.Username, verifyURL,
	)

	return mailing.SendMail(user.Email, "Verify your FoodWise account", body)
}

func (s *userService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateTokenWithClaims(token)
	if err != nil {
		return err
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return domain.ErrTokenInvalid
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	user.IsVerified = true
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) GetUsers(ctx context.Context) ([]domain.UserResponse, error) {
	users, err := s.userRepository.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, toUserResponse(user))
	}
	return response, nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	rows, err := s.userRepository.DeleteUser(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (s *userService) UpdateRole(ctx context.Context, id string, role string) error {
	rows, err := s.userRepository.UpdateRole(ctx, id, role)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:         user.ID.String(),
		Username:   user.Username,
		Email:      user.Email,
		Role:       user.Role,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
	}
}
