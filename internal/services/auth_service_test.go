package services_test

import (
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"salonspa/internal/models"
	"salonspa/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockCustomerRepository is a mock implementation of repositories.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) GetAll() ([]models.Customer, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByID(id string) (*models.Customer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByUserID(userID string) (*models.Customer, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Create(customer *models.Customer) error {
	args := m.Called(customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(customer *models.Customer) error {
	args := m.Called(customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// TestMain is used to setup test environment
func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(os.Stdout) // Changed to stdout to see logs if any, can be changed to ioutil.Discard
	code := m.Run()
	os.Exit(code)
}

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockCustomers := new(MockCustomerRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, mockCustomers, testJWTSecret)

	// Test successful registration
	user := &models.User{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	}

	mockRepo.On("GetByUsername", user.Username).Return(nil, nil).Once()
	mockRepo.On("GetByEmail", user.Email).Return(nil, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()
	// No profile linked to the fresh identity yet, so one gets created.
	mockCustomers.On("GetByUserID", mock.AnythingOfType("string")).Return(nil, models.ErrNotFound).Once()
	mockCustomers.On("Create", mock.MatchedBy(func(c *models.Customer) bool {
		return c.Name == "Ana" && c.Surname == "Lopez" && c.Email == user.Email && c.UserID != nil
	})).Return(nil).Once()

	err := authService.RegisterUser(user, "Ana", "Lopez", "+5215511122233")
	assert.NoError(t, err)
	assert.NotEqual(t, "password123", user.Password, "password must be stored hashed")
	mockRepo.AssertExpectations(t)
	mockCustomers.AssertExpectations(t)

	// Test username already taken
	mockRepo.On("GetByUsername", user.Username).Return(&models.User{ID: "1"}, nil).Once()
	err = authService.RegisterUser(user, "Ana", "Lopez", "")
	assert.ErrorIs(t, err, models.ErrAlreadyExists)
	assert.Contains(t, err.Error(), "username 'testuser' already taken")
	mockRepo.AssertExpectations(t)

	// Test email already registered
	mockRepo.On("GetByUsername", user.Username).Return(nil, nil).Once()
	mockRepo.On("GetByEmail", user.Email).Return(&models.User{ID: "1"}, nil).Once()
	err = authService.RegisterUser(user, "Ana", "Lopez", "")
	assert.ErrorIs(t, err, models.ErrAlreadyExists)
	assert.Contains(t, err.Error(), "email 'test@example.com' already registered")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUser_UpdatesExistingProfile(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockCustomers := new(MockCustomerRepository)
	authService := services.NewAuthService(mockRepo, mockCustomers, "test_jwt_secret")

	user := &models.User{
		Username: "returning",
		Email:    "returning@example.com",
		Password: "password123",
	}
	userID := "user-55"
	existing := &models.Customer{ID: "cust-55", UserID: &userID, Name: "Old", Surname: "Name"}

	mockRepo.On("GetByUsername", user.Username).Return(nil, nil).Once()
	mockRepo.On("GetByEmail", user.Email).Return(nil, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()
	mockCustomers.On("GetByUserID", mock.AnythingOfType("string")).Return(existing, nil).Once()
	mockCustomers.On("Update", mock.MatchedBy(func(c *models.Customer) bool {
		return c.ID == "cust-55" && c.Name == "Maria" && c.Surname == "Reyes"
	})).Return(nil).Once()

	err := authService.RegisterUser(user, "Maria", "Reyes", "+5215599988877")
	assert.NoError(t, err)
	mockCustomers.AssertExpectations(t)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockCustomers := new(MockCustomerRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, mockCustomers, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Username: "testuser",
		Email:    "test@example.com",
		Password: string(hashedPassword),
		IsStaff:  true,
	}

	// Test successful login
	mockRepo.On("GetByUsername", user.Username).Return(user, nil).Once()

	token, err := authService.LoginUser("testuser", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Verify the token claims
	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims["user_id"])
	assert.Equal(t, "testuser", claims["username"])
	assert.Equal(t, true, claims["is_staff"])
	mockRepo.AssertExpectations(t)

	// Test user not found
	mockRepo.On("GetByUsername", "unknownuser").Return(nil, fmt.Errorf("not found")).Once()
	_, err = authService.LoginUser("unknownuser", "password123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	mockRepo.AssertExpectations(t)

	// Test incorrect password
	mockRepo.On("GetByUsername", user.Username).Return(user, nil).Once()
	_, err = authService.LoginUser("testuser", "wrongpassword")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockCustomers := new(MockCustomerRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, mockCustomers, testJWTSecret)

	// Generate a valid token first
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Username: "testuser",
		Password: string(hashedPassword),
	}
	mockRepo.On("GetByUsername", user.Username).Return(user, nil).Once()
	validToken, err := authService.LoginUser("testuser", "password123")
	assert.NoError(t, err)

	claims, err := authService.ValidateToken(validToken)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims["user_id"])
	assert.Equal(t, false, claims["is_staff"])

	// Garbage token
	_, err = authService.ValidateToken("not.a.token")
	assert.Error(t, err)

	// Token signed with a different secret
	otherToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, _ := otherToken.SignedString([]byte("wrong_secret"))
	_, err = authService.ValidateToken(signed)
	assert.Error(t, err)

	// Expired token
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	signedExpired, _ := expired.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(signedExpired)
	assert.Error(t, err)
}
