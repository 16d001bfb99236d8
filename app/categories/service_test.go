package categories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BBojan94/InventoryManagement/apperrors"
	"github.com/BBojan94/InventoryManagement/models"
)

// --- Fake Store ---

type fakeCategoryStore struct {
	nextID uint
	items  map[uint]models.Category
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{items: make(map[uint]models.Category)}
}

func (f *fakeCategoryStore) Save(c *models.Category) error {
	if c.ID == 0 {
		f.nextID++
		c.ID = f.nextID
	}
	f.items[c.ID] = *c
	return nil
}

func (f *fakeCategoryStore) FindAll() ([]models.Category, error) {
	all := make([]models.Category, 0, len(f.items))
	for _, c := range f.items {
		all = append(all, c)
	}
	return all, nil
}

func (f *fakeCategoryStore) FindByID(id uint) (*models.Category, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, apperrors.NewNotFound("Category", id)
	}
	return &c, nil
}

func (f *fakeCategoryStore) DeleteByID(id uint) error {
	delete(f.items, id)
	return nil
}

// --- Tests ---

func TestCategoryCreateRoundTrip(t *testing.T) {
	store := newFakeCategoryStore()
	svc := NewCategoryService(store)

	created, err := svc.Create(CategoryInput{Name: "Beverages", Description: "Drinks of all kinds"})
	assert.NoError(t, err)
	assert.NotZero(t, created.ID, "create must populate the surrogate id")

	got, err := svc.Get(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Beverages", got.Name)
	assert.Equal(t, "Drinks of all kinds", got.Description)
}

func TestCategoryUpdateMergesAllFields(t *testing.T) {
	store := newFakeCategoryStore()
	svc := NewCategoryService(store)

	created, err := svc.Create(CategoryInput{Name: "Beverages", Description: "Drinks"})
	assert.NoError(t, err)

	// An empty description must overwrite the old value, not be skipped.
	updated, err := svc.Update(created.ID, CategoryInput{Name: "Drinks", Description: ""})
	assert.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID, "update must preserve identity")
	assert.Equal(t, "Drinks", updated.Name)
	assert.Equal(t, "", updated.Description)

	got, err := svc.Get(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Drinks", got.Name)
	assert.Equal(t, "", got.Description)
}

func TestCategoryUpdateMissing(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryStore())

	_, err := svc.Update(42, CategoryInput{Name: "Ghost"})
	assert.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.EqualError(t, err, "Category not found")

	// A failed update must not create the record.
	_, err = svc.Get(42)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCategoryDeleteIsIdempotent(t *testing.T) {
	store := newFakeCategoryStore()
	svc := NewCategoryService(store)

	created, err := svc.Create(CategoryInput{Name: "Beverages"})
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(created.ID))
	assert.NoError(t, svc.Delete(created.ID), "second delete must not fail")

	_, err = svc.Get(created.ID)
	assert.True(t, apperrors.IsNotFound(err))

	assert.NoError(t, svc.Delete(999), "deleting an unknown id must not fail")
}

func TestCategoryListCompleteness(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryStore())

	inputs := []CategoryInput{
		{Name: "Beverages", Description: "Drinks"},
		{Name: "Snacks", Description: "Quick bites"},
		{Name: "Dairy", Description: "Milk and cheese"},
	}
	for _, in := range inputs {
		_, err := svc.Create(in)
		assert.NoError(t, err)
	}

	list, err := svc.List()
	assert.NoError(t, err)
	assert.Len(t, list, len(inputs))

	names := make([]string, len(list))
	for i, c := range list {
		names[i] = c.Name
	}
	assert.ElementsMatch(t, []string{"Beverages", "Snacks", "Dairy"}, names)
}
