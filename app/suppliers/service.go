package suppliers

import (
	"github.com/BBojan94/InventoryManagement/models"
)

// SupplierStore is the persistence contract the service needs.
type SupplierStore interface {
	Save(supplier *models.Supplier) error
	FindAll() ([]models.Supplier, error)
	FindByID(id uint) (*models.Supplier, error)
	DeleteByID(id uint) error
}

// SupplierInput carries the writable supplier fields for create and update.
type SupplierInput struct {
	Name        string `json:"name" validate:"required"`
	ContactName string `json:"contactName"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
}

type SupplierService struct {
	store SupplierStore
}

func NewSupplierService(store SupplierStore) *SupplierService {
	return &SupplierService{store: store}
}

func (s *SupplierService) Create(in SupplierInput) (*models.Supplier, error) {
	supplier := newSupplier(in)
	if err := s.store.Save(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) List() ([]models.Supplier, error) {
	return s.store.FindAll()
}

func (s *SupplierService) Get(id uint) (*models.Supplier, error) {
	return s.store.FindByID(id)
}

func (s *SupplierService) Update(id uint, in SupplierInput) (*models.Supplier, error) {
	supplier, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	applySupplierUpdate(supplier, in)
	if err := s.store.Save(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) Delete(id uint) error {
	return s.store.DeleteByID(id)
}

func newSupplier(in SupplierInput) *models.Supplier {
	return &models.Supplier{
		Name:        in.Name,
		ContactName: in.ContactName,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
	}
}

// applySupplierUpdate overwrites every mutable field with the payload value,
// zero values included. The identity is preserved from the stored record.
func applySupplierUpdate(supplier *models.Supplier, in SupplierInput) {
	supplier.Name = in.Name
	supplier.ContactName = in.ContactName
	supplier.Email = in.Email
	supplier.Phone = in.Phone
	supplier.Address = in.Address
}
