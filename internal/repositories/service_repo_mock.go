package repositories

import (
	"fmt"
	"sync"

	"salonspa/internal/models"

	"github.com/google/uuid"
)

// MockServiceRepository is an in-memory implementation of ServiceRepository.
type MockServiceRepository struct {
	services map[string]models.Service
	mu       sync.RWMutex
}

// NewMockServiceRepository creates a new instance of MockServiceRepository.
func NewMockServiceRepository() *MockServiceRepository {
	return &MockServiceRepository{
		services: make(map[string]models.Service),
	}
}

// GetAll returns all services.
func (r *MockServiceRepository) GetAll() ([]models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	serviceList := make([]models.Service, 0, len(r.services))
	for _, s := range r.services {
		serviceList = append(serviceList, s)
	}
	return serviceList, nil
}

// GetByID returns a service by its ID.
func (r *MockServiceRepository) GetByID(id string) (*models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	service, ok := r.services[id]
	if !ok {
		return nil, fmt.Errorf("service %s: %w", id, models.ErrNotFound)
	}
	return &service, nil
}

// Create adds a new service.
func (r *MockServiceRepository) Create(service *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if service.ID == "" {
		service.ID = uuid.New().String()
	}
	r.services[service.ID] = *service
	return nil
}

// Update modifies an existing service.
func (r *MockServiceRepository) Update(service *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.services[service.ID]; !ok {
		return fmt.Errorf("service %s for update: %w", service.ID, models.ErrNotFound)
	}
	r.services[service.ID] = *service
	return nil
}

// Delete removes a service by its ID.
func (r *MockServiceRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.services[id]; !ok {
		return fmt.Errorf("service %s for deletion: %w", id, models.ErrNotFound)
	}
	delete(r.services, id)
	return nil
}
