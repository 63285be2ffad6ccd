package services

import (
	"fmt"

	"eshop/internal/models"
	"eshop/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// CategoryService handles business logic related to product categories.
type CategoryService struct {
	repo     repositories.CategoryRepository
	validate *validator.Validate
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository, validate *validator.Validate) *CategoryService {
	return &CategoryService{
		repo:     repo,
		validate: validate,
	}
}

// GetAllCategories retrieves all categories.
func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	return s.repo.GetAll()
}

// GetCategoryByID retrieves a single category by its ID.
func (s *CategoryService) GetCategoryByID(id string) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, fmt.Errorf("no such category: %w", ErrNotFound)
		}
		return nil, err
	}
	return category, nil
}

// CreateCategory creates a new category.
func (s *CategoryService) CreateCategory(category *models.Category) error {
	if err := validateStruct(s.validate, category); err != nil {
		return err
	}
	return s.repo.Create(category)
}

// UpdateCategory updates an existing category.
func (s *CategoryService) UpdateCategory(id string, category *models.Category) (*models.Category, error) {
	retrieved, err := s.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}
	retrieved.Title = category.Title
	if err := validateStruct(s.validate, retrieved); err != nil {
		return nil, err
	}
	if err := s.repo.Update(retrieved); err != nil {
		return nil, err
	}
	return retrieved, nil
}

// DeleteCategory deletes a category by its ID.
func (s *CategoryService) DeleteCategory(id string) error {
	if err := s.repo.Delete(id); err != nil {
		if isRecordNotFound(err) {
			return fmt.Errorf("category does not exist: %w", ErrNotFound)
		}
		return err
	}
	return nil
}
