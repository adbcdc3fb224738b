package user

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rubeenavs/foodwise/domain"
	"github.com/rubeenavs/foodwise/entities"
	"github.com/rubeenavs/foodwise/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}))
	return db
}

func newTestService(db *gorm.DB) UserService {
	return NewUserService(NewUserRepository(db), jwt.NewJWTService())
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)

	req := domain.RegisterRequest{
		Username: "alex",
		Email:    "alex@example.com",
		Password: "supersecret",
	}
	require.NoError(t, service.Register(context.Background(), req))

	var stored entities.User
	require.NoError(t, db.Where("email = ?", req.Email).First(&stored).Error)
	assert.Equal(t, domain.RoleUser, stored.Role)
	assert.NotEqual(t, req.Password, stored.Password, "password must be stored hashed")

	res, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "alex", res.User.Username)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)

	req := domain.RegisterRequest{Username: "alex", Email: "alex@example.com", Password: "supersecret"}
	require.NoError(t, service.Register(context.Background(), req))

	err := service.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)

	require.NoError(t, service.Register(context.Background(), domain.RegisterRequest{
		Username: "alex", Email: "alex@example.com", Password: "supersecret",
	}))

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Email: "alex@example.com", Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email: "nobody@example.com", Password: "supersecret",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUpdateRole(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)

	require.NoError(t, service.Register(context.Background(), domain.RegisterRequest{
		Username: "alex", Email: "alex@example.com", Password: "supersecret",
	}))
	var stored entities.User
	require.NoError(t, db.First(&stored).Error)

	require.NoError(t, service.UpdateRole(context.Background(), stored.ID.String(), domain.RoleAdmin))

	profile, err := service.Me(context.Background(), stored.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, profile.Role)

	err = service.UpdateRole(context.Background(), uuid.New().String(), domain.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)

	require.NoError(t, service.Register(context.Background(), domain.RegisterRequest{
		Username: "alex", Email: "alex@example.com", Password: "supersecret",
	}))
	var stored entities.User
	require.NoError(t, db.First(&stored).Error)

	require.NoError(t, service.DeleteUser(context.Background(), stored.ID.String()))
	assert.ErrorIs(t, service.DeleteUser(context.Background(), stored.ID.String()), domain.ErrUserNotFound)
}
