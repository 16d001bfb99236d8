// Package web serves the form-based product management pages. It drives the
// same product service as the JSON API, so resolution and merge semantics
// are identical on both surfaces.
package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/BBojan94/InventoryManagement/apperrors"
	"github.com/BBojan94/InventoryManagement/app/products"
	"github.com/BBojan94/InventoryManagement/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type ProductManager interface {
	Create(in products.ProductInput) (*models.Product, error)
	List() ([]models.Product, error)
	Get(id uint) (*models.Product, error)
	Update(id uint, in products.ProductInput) (*models.Product, error)
	Delete(id uint) error
}

type CategoryLister interface {
	List() ([]models.Category, error)
}

type SupplierLister interface {
	List() ([]models.Supplier, error)
}

type ProductPages struct {
	products   ProductManager
	categories CategoryLister
	suppliers  SupplierLister
	validate   *validator.Validate
}

func NewProductPages(p ProductManager, c CategoryLister, s SupplierLister) *ProductPages {
	return &ProductPages{
		products:   p,
		categories: c,
		suppliers:  s,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
}

// formData is the model every product page template renders from.
type formData struct {
	Product    products.ProductInput
	ProductID  uint
	Categories []models.Category
	Suppliers  []models.Supplier
	Error      string
}

func (h *ProductPages) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.products.List()
	if err != nil {
		renderFailure(w, err)
		return
	}
	render(w, "list.html", list)
}

func (h *ProductPages) HandleNewForm(w http.ResponseWriter, r *http.Request) {
	data, err := h.emptyForm()
	if err != nil {
		renderFailure(w, err)
		return
	}
	render(w, "new.html", data)
}

func (h *ProductPages) HandleCreate(w http.ResponseWriter, r *http.Request) {
	input, parseErr := parseProductForm(r)
	if parseErr == nil {
		parseErr = h.validate.Struct(input)
	}
	if parseErr == nil {
		_, err := h.products.Create(input)
		if err == nil {
			http.Redirect(w, r, "/products", http.StatusSeeOther)
			return
		}
		if !apperrors.IsNotFound(err) {
			renderFailure(w, err)
			return
		}
		parseErr = err
	}

	h.rerenderForm(w, "new.html", 0, input, parseErr)
}

func (h *ProductPages) HandleDetails(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	product, err := h.products.Get(id)
	if err != nil {
		renderFailure(w, err)
		return
	}
	render(w, "details.html", product)
}

func (h *ProductPages) HandleEditForm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	product, err := h.products.Get(id)
	if err != nil {
		renderFailure(w, err)
		return
	}

	data, err := h.emptyForm()
	if err != nil {
		renderFailure(w, err)
		return
	}
	data.ProductID = product.ID
	data.Product = products.ProductInput{
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price.InexactFloat64(),
		Quantity:    product.Quantity,
		SKU:         product.SKU,
		Unit:        product.Unit,
		Active:      product.Active,
		CategoryID:  product.CategoryID,
		SupplierID:  product.SupplierID,
	}
	render(w, "edit.html", data)
}

func (h *ProductPages) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	input, parseErr := parseProductForm(r)
	if parseErr == nil {
		parseErr = h.validate.Struct(input)
	}
	if parseErr == nil {
		_, err := h.products.Update(id, input)
		if err == nil {
			http.Redirect(w, r, "/products", http.StatusSeeOther)
			return
		}
		if !apperrors.IsNotFound(err) {
			renderFailure(w, err)
			return
		}
		parseErr = err
	}

	h.rerenderForm(w, "edit.html", id, input, parseErr)
}

func (h *ProductPages) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.products.Delete(id); err != nil {
		renderFailure(w, err)
		return
	}
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func (h *ProductPages) emptyForm() (formData, error) {
	categories, err := h.categories.List()
	if err != nil {
		return formData{}, err
	}
	suppliers, err := h.suppliers.List()
	if err != nil {
		return formData{}, err
	}
	return formData{Categories: categories, Suppliers: suppliers}, nil
}

// rerenderForm shows the submitted values again alongside the failure, so
// the user does not lose their input.
func (h *ProductPages) rerenderForm(w http.ResponseWriter, page string, id uint, input products.ProductInput, cause error) {
	data, err := h.emptyForm()
	if err != nil {
		renderFailure(w, err)
		return
	}
	data.ProductID = id
	data.Product = input
	data.Error = cause.Error()
	w.WriteHeader(http.StatusBadRequest)
	render(w, page, data)
}

func parseProductForm(r *http.Request) (products.ProductInput, error) {
	var input products.ProductInput
	if err := r.ParseForm(); err != nil {
		return input, err
	}

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		return input, err
	}
	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil {
		return input, err
	}
	categoryID, err := strconv.ParseUint(r.FormValue("categoryId"), 10, 32)
	if err != nil {
		return input, err
	}
	supplierID, err := strconv.ParseUint(r.FormValue("supplierId"), 10, 32)
	if err != nil {
		return input, err
	}

	input = products.ProductInput{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Price:       price,
		Quantity:    quantity,
		SKU:         r.FormValue("sku"),
		Unit:        r.FormValue("unit"),
		Active:      r.FormValue("active") == "on",
		CategoryID:  uint(categoryID),
		SupplierID:  uint(supplierID),
	}
	return input, nil
}

func render(w http.ResponseWriter, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, page, data); err != nil {
		slog.Error("failed to render page", "page", page, "error", err)
	}
}

func renderFailure(w http.ResponseWriter, err error) {
	if apperrors.IsNotFound(err) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	slog.Error("unexpected error", "error", err)
	http.Error(w, "An unexpected error occurred", http.StatusInternalServerError)
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	return uint(id), err
}
