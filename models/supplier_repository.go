package models

import (
	"errors"

	"gorm.io/gorm"

	"github.com/BBojan94/InventoryManagement/apperrors"
)

type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{
		db: db,
	}
}

func (r *SupplierRepository) Save(supplier *Supplier) error {
	return r.db.Save(supplier).Error
}

func (r *SupplierRepository) FindAll() ([]Supplier, error) {
	var suppliers []Supplier
	if err := r.db.Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *SupplierRepository) FindByID(id uint) (*Supplier, error) {
	var supplier Supplier
	if err := r.db.First(&supplier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Supplier", id)
		}
		return nil, err
	}
	return &supplier, nil
}

func (r *SupplierRepository) DeleteByID(id uint) error {
	return r.db.Delete(&Supplier{}, id).Error
}
