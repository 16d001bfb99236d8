package models

import (
	"errors"

	"gorm.io/gorm"

	"github.com/BBojan94/InventoryManagement/apperrors"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{
		db: db,
	}
}

// Save inserts the category when its ID is zero, otherwise overwrites the
// record stored under that ID. The generated ID is populated on insert.
func (r *CategoryRepository) Save(category *Category) error {
	return r.db.Save(category).Error
}

func (r *CategoryRepository) FindAll() ([]Category, error) {
	var categories []Category
	if err := r.db.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) FindByID(id uint) (*Category, error) {
	var category Category
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Category", id)
		}
		return nil, err // Other DB error
	}
	return &category, nil
}

// DeleteByID removes the category. Deleting an id that does not exist is
// not an error, so delete stays idempotent.
func (r *CategoryRepository) DeleteByID(id uint) error {
	return r.db.Delete(&Category{}, id).Error
}
