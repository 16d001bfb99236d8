package products

import (
	"github.com/shopspring/decimal"

	"github.com/BBojan94/InventoryManagement/models"
)

// ProductStore is the persistence contract the service needs.
type ProductStore interface {
	Save(product *models.Product) error
	FindAll() ([]models.Product, error)
	FindByID(id uint) (*models.Product, error)
	DeleteByID(id uint) error
}

// CategoryResolver and SupplierResolver look up the referenced entities a
// product points at. Resolution failing with a not-found error aborts the
// write before any product state is touched.
type CategoryResolver interface {
	FindByID(id uint) (*models.Category, error)
}

type SupplierResolver interface {
	FindByID(id uint) (*models.Supplier, error)
}

// ProductInput carries the writable product fields. References are plain
// identifiers; the service resolves them to full records before persisting.
type ProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	SKU         string  `json:"sku"`
	Unit        string  `json:"unit"`
	Active      bool    `json:"active"`
	CategoryID  uint    `json:"categoryId" validate:"required"`
	SupplierID  uint    `json:"supplierId" validate:"required"`
}

type ProductService struct {
	store      ProductStore
	categories CategoryResolver
	suppliers  SupplierResolver
}

func NewProductService(store ProductStore, categories CategoryResolver, suppliers SupplierResolver) *ProductService {
	return &ProductService{
		store:      store,
		categories: categories,
		suppliers:  suppliers,
	}
}

// Create resolves both references first, so a bad categoryId or supplierId
// fails before anything is written.
func (s *ProductService) Create(in ProductInput) (*models.Product, error) {
	category, err := s.categories.FindByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	supplier, err := s.suppliers.FindByID(in.SupplierID)
	if err != nil {
		return nil, err
	}

	product := newProduct(in, category, supplier)
	if err := s.store.Save(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) List() ([]models.Product, error) {
	return s.store.FindAll()
}

func (s *ProductService) Get(id uint) (*models.Product, error) {
	return s.store.FindByID(id)
}

// Update merges the payload onto the stored product. Both references are
// re-resolved on every call, even when unchanged, and the stored record is
// only written once the lookup and both resolutions have succeeded.
func (s *ProductService) Update(id uint, in ProductInput) (*models.Product, error) {
	product, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	category, err := s.categories.FindByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	supplier, err := s.suppliers.FindByID(in.SupplierID)
	if err != nil {
		return nil, err
	}

	applyProductUpdate(product, in, category, supplier)
	if err := s.store.Save(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete is idempotent: deleting an id that was never persisted, or was
// already deleted, is not an error.
func (s *ProductService) Delete(id uint) error {
	return s.store.DeleteByID(id)
}

func newProduct(in ProductInput, category *models.Category, supplier *models.Supplier) *models.Product {
	return &models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       decimal.NewFromFloat(in.Price),
		Quantity:    in.Quantity,
		SKU:         in.SKU,
		Unit:        in.Unit,
		Active:      in.Active,
		CategoryID:  category.ID,
		SupplierID:  supplier.ID,
		Category:    *category,
		Supplier:    *supplier,
	}
}

// applyProductUpdate overwrites every mutable field with the payload value,
// zero values included, and swaps both references to the freshly resolved
// records. The identity is preserved from the stored record.
func applyProductUpdate(product *models.Product, in ProductInput, category *models.Category, supplier *models.Supplier) {
	product.Name = in.Name
	product.Description = in.Description
	product.Price = decimal.NewFromFloat(in.Price)
	product.Quantity = in.Quantity
	product.SKU = in.SKU
	product.Unit = in.Unit
	product.Active = in.Active
	product.CategoryID = category.ID
	product.SupplierID = supplier.ID
	product.Category = *category
	product.Supplier = *supplier
}
