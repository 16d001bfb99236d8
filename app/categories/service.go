package categories

import (
	"github.com/BBojan94/InventoryManagement/models"
)

// CategoryStore is the persistence contract the service needs.
type CategoryStore interface {
	Save(category *models.Category) error
	FindAll() ([]models.Category, error)
	FindByID(id uint) (*models.Category, error)
	DeleteByID(id uint) error
}

// CategoryInput carries the writable category fields. The same payload is
// used for create and update; on update every field overwrites the stored
// value.
type CategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type CategoryService struct {
	store CategoryStore
}

func NewCategoryService(store CategoryStore) *CategoryService {
	return &CategoryService{store: store}
}

func (s *CategoryService) Create(in CategoryInput) (*models.Category, error) {
	category := newCategory(in)
	if err := s.store.Save(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) List() ([]models.Category, error) {
	return s.store.FindAll()
}

func (s *CategoryService) Get(id uint) (*models.Category, error) {
	return s.store.FindByID(id)
}

// Update merges the payload onto the stored category. A missing id is a
// not-found error, never an implicit create.
func (s *CategoryService) Update(id uint, in CategoryInput) (*models.Category, error) {
	category, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	applyCategoryUpdate(category, in)
	if err := s.store.Save(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete is idempotent: deleting an id that was never persisted, or was
// already deleted, is not an error.
func (s *CategoryService) Delete(id uint) error {
	return s.store.DeleteByID(id)
}

func newCategory(in CategoryInput) *models.Category {
	return &models.Category{
		Name:        in.Name,
		Description: in.Description,
	}
}

// applyCategoryUpdate overwrites every mutable field with the payload value,
// zero values included. The identity is preserved from the stored record.
func applyCategoryUpdate(category *models.Category, in CategoryInput) {
	category.Name = in.Name
	category.Description = in.Description
}
