package services_test

import (
	"log"
	"os"
	"testing"
	"time"

	"eshop/internal/models"
	"eshop/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetAll() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByPhone(phone string) (*models.User, error) {
	args := m.Called(phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) DebitBalance(id string, amount float64) (bool, error) {
	args := m.Called(id, amount)
	return args.Bool(0), args.Error(1)
}

// TestMain is used to setup test environment
func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(os.Stdout) // Changed to stdout to see logs if any, can be changed to ioutil.Discard
	code := m.Run()
	os.Exit(code)
}

func newTestUser() *models.User {
	return &models.User{
		Username:  "testuser",
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
		Address:   "1 Test Street",
		Phone:     "+300000000001",
	}
}

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, validator.New(), testJWTSecret)

	// Test successful registration
	user := newTestUser()

	mockRepo.On("GetByUsername", user.Username).Return(nil, nil).Once()
	mockRepo.On("GetByPhone", user.Phone).Return(nil, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := authService.RegisterUser(user)
	assert.NoError(t, err)
	assert.NotEqual(t, "password123", user.Password) // Password must be hashed
	assert.Equal(t, "user", user.Role)               // Default role assigned
	mockRepo.AssertExpectations(t)

	// Test username already taken
	user = newTestUser()
	mockRepo.On("GetByUsername", user.Username).Return(&models.User{ID: "existing"}, nil).Once()
	err = authService.RegisterUser(user)
	assert.Error(t, err)
	assert.ErrorIs(t, err, services.ErrConflict)
	assert.Contains(t, err.Error(), "username 'testuser' already taken")
	mockRepo.AssertExpectations(t)

	// Test phone already registered
	user = newTestUser()
	mockRepo.On("GetByUsername", user.Username).Return(nil, nil).Once()
	mockRepo.On("GetByPhone", user.Phone).Return(&models.User{ID: "existing"}, nil).Once()
	err = authService.RegisterUser(user)
	assert.Error(t, err)
	assert.ErrorIs(t, err, services.ErrConflict)
	mockRepo.AssertExpectations(t)

	// Test validation failure (missing profile fields)
	err = authService.RegisterUser(&models.User{Username: "short", Password: "password123"})
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, validator.New(), testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := newTestUser()
	user.ID = "user-123"
	user.Password = string(hashedPassword)
	user.Role = "admin"

	// Test successful login
	mockRepo.On("GetByUsername", user.Username).Return(user, nil).Once()
	token, err := authService.LoginUser("testuser", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	mockRepo.AssertExpectations(t)

	// The token carries the user's id, name, and role
	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims["user_id"])
	assert.Equal(t, "testuser", claims["username"])
	assert.Equal(t, "admin", claims["role"])

	// Test wrong password
	mockRepo.On("GetByUsername", user.Username).Return(user, nil).Once()
	token, err = authService.LoginUser("testuser", "wrongpassword")
	assert.Error(t, err)
	assert.Empty(t, token)
	assert.Contains(t, err.Error(), "invalid credentials")
	mockRepo.AssertExpectations(t)

	// Test unknown username
	mockRepo.On("GetByUsername", "nobody").Return(nil, assert.AnError).Once()
	token, err = authService.LoginUser("nobody", "password123")
	assert.Error(t, err)
	assert.Empty(t, token)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, validator.New(), "test_jwt_secret")

	// A token signed with a different secret must be rejected
	other := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	otherSigned, err := other.SignedString([]byte("some_other_secret"))
	assert.NoError(t, err)

	_, err = authService.ValidateToken(otherSigned)
	assert.Error(t, err)

	// An expired token must be rejected
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	expiredSigned, err := expired.SignedString([]byte("test_jwt_secret"))
	assert.NoError(t, err)

	_, err = authService.ValidateToken(expiredSigned)
	assert.Error(t, err)

	// Garbage is rejected
	_, err = authService.ValidateToken("not-a-token")
	assert.Error(t, err)
}
