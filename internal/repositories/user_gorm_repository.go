package repositories

import (
	"errors"
	"fmt"

	"salonspa/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{db: db}
}

// Create creates a new user in the database.
func (r *GORMUserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByUsername retrieves a user by their username.
func (r *GORMUserRepository) GetByUsername(username string) (*models.User, error) {
	return r.firstUser("username = ?", username)
}

// GetByEmail retrieves a user by their email.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	return r.firstUser("email = ?", email)
}

// GetByID retrieves a user by their ID.
func (r *GORMUserRepository) GetByID(id string) (*models.User, error) {
	return r.firstUser("id = ?", id)
}

func (r *GORMUserRepository) firstUser(query string, arg string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", arg, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user %s: %w", arg, err)
	}
	return &user, nil
}
