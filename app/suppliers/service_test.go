package suppliers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BBojan94/InventoryManagement/apperrors"
	"github.com/BBojan94/InventoryManagement/models"
)

// --- Fake Store ---

type fakeSupplierStore struct {
	nextID uint
	items  map[uint]models.Supplier
}

func newFakeSupplierStore() *fakeSupplierStore {
	return &fakeSupplierStore{items: make(map[uint]models.Supplier)}
}

func (f *fakeSupplierStore) Save(s *models.Supplier) error {
	if s.ID == 0 {
		f.nextID++
		s.ID = f.nextID
	}
	f.items[s.ID] = *s
	return nil
}

func (f *fakeSupplierStore) FindAll() ([]models.Supplier, error) {
	all := make([]models.Supplier, 0, len(f.items))
	for _, s := range f.items {
		all = append(all, s)
	}
	return all, nil
}

func (f *fakeSupplierStore) FindByID(id uint) (*models.Supplier, error) {
	s, ok := f.items[id]
	if !ok {
		return nil, apperrors.NewNotFound("Supplier", id)
	}
	return &s, nil
}

func (f *fakeSupplierStore) DeleteByID(id uint) error {
	delete(f.items, id)
	return nil
}

// --- Tests ---

func TestSupplierCreateRoundTrip(t *testing.T) {
	svc := NewSupplierService(newFakeSupplierStore())

	created, err := svc.Create(SupplierInput{
		Name:        "Fresh Farms",
		ContactName: "Ivana Petrova",
		Email:       "ivana@freshfarms.example",
		Phone:       "+389 70 123 456",
		Address:     "12 Orchard Lane",
	})
	assert.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := svc.Get(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Fresh Farms", got.Name)
	assert.Equal(t, "ivana@freshfarms.example", got.Email)
}

func TestSupplierUpdateMergesAllFields(t *testing.T) {
	svc := NewSupplierService(newFakeSupplierStore())

	created, err := svc.Create(SupplierInput{
		Name:        "Fresh Farms",
		ContactName: "Ivana Petrova",
		Email:       "ivana@freshfarms.example",
		Phone:       "+389 70 123 456",
		Address:     "12 Orchard Lane",
	})
	assert.NoError(t, err)

	// Empty phone and address must overwrite the stored values.
	updated, err := svc.Update(created.ID, SupplierInput{
		Name:        "Fresh Farms Ltd",
		ContactName: "Marko Stojanov",
		Email:       "marko@freshfarms.example",
		Phone:       "",
		Address:     "",
	})
	assert.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	got, err := svc.Get(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Fresh Farms Ltd", got.Name)
	assert.Equal(t, "Marko Stojanov", got.ContactName)
	assert.Equal(t, "marko@freshfarms.example", got.Email)
	assert.Equal(t, "", got.Phone)
	assert.Equal(t, "", got.Address)
}

func TestSupplierUpdateMissing(t *testing.T) {
	svc := NewSupplierService(newFakeSupplierStore())

	_, err := svc.Update(5, SupplierInput{Name: "Ghost", Email: "ghost@example.com"})
	assert.True(t, apperrors.IsNotFound(err))
	assert.EqualError(t, err, "Supplier not found")
}

func TestSupplierDeleteIsIdempotent(t *testing.T) {
	svc := NewSupplierService(newFakeSupplierStore())

	created, err := svc.Create(SupplierInput{Name: "Fresh Farms", Email: "info@freshfarms.example"})
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(created.ID))
	assert.NoError(t, svc.Delete(created.ID))

	_, err = svc.Get(created.ID)
	assert.True(t, apperrors.IsNotFound(err))
}
