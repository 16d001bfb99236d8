package products

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/BBojan94/InventoryManagement/app/api"
	"github.com/BBojan94/InventoryManagement/models"
)

// ProductResponse flattens the category and supplier references to their
// identifiers; full objects are never nested in API responses.
type ProductResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	SKU         string  `json:"sku"`
	Unit        string  `json:"unit"`
	Active      bool    `json:"active"`
	CategoryID  uint    `json:"categoryId"`
	SupplierID  uint    `json:"supplierId"`
}

type ProductProvider interface {
	Create(in ProductInput) (*models.Product, error)
	List() ([]models.Product, error)
	Get(id uint) (*models.Product, error)
	Update(id uint, in ProductInput) (*models.Product, error)
	Delete(id uint) error
}

type ProductHandler struct {
	svc      ProductProvider
	validate *validator.Validate
}

func NewProductHandler(svc ProductProvider) *ProductHandler {
	return &ProductHandler{
		svc:      svc,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.svc.Create(input)
	if err != nil {
		api.TranslateError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusCreated, toProductResponse(product))
}

func (h *ProductHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.List()
	if err != nil {
		api.TranslateError(w, err)
		return
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = toProductResponse(&p)
	}
	api.WriteJSON(w, http.StatusOK, response)
}

func (h *ProductHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := api.ParseID(r)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	product, err := h.svc.Get(id)
	if err != nil {
		api.TranslateError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, toProductResponse(product))
}

func (h *ProductHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := api.ParseID(r)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var input ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.svc.Update(id, input)
	if err != nil {
		api.TranslateError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, toProductResponse(product))
}

func (h *ProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := api.ParseID(r)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.svc.Delete(id); err != nil {
		api.TranslateError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Quantity:    p.Quantity,
		SKU:         p.SKU,
		Unit:        p.Unit,
		Active:      p.Active,
		CategoryID:  p.CategoryID,
		SupplierID:  p.SupplierID,
	}
}
