package models

import (
	"errors"

	"gorm.io/gorm"

	"github.com/BBojan94/InventoryManagement/apperrors"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{
		db: db,
	}
}

func (r *ProductRepository) Save(product *Product) error {
	// Omit the associations so Save never touches the category or supplier
	// tables; only the foreign-key columns are written.
	return r.db.Omit("Category", "Supplier").Save(product).Error
}

func (r *ProductRepository) FindAll() ([]Product, error) {
	var products []Product
	if err := r.db.
		Preload("Category").
		Preload("Supplier").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) FindByID(id uint) (*Product, error) {
	var product Product
	if err := r.db.
		Preload("Category").
		Preload("Supplier").
		First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Product", id)
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) DeleteByID(id uint) error {
	return r.db.Delete(&Product{}, id).Error
}
