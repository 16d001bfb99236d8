package suppliers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/BBojan94/InventoryManagement/app/api"
	"github.com/BBojan94/InventoryManagement/models"
)

type SupplierResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
}

type SupplierProvider interface {
	Create(in SupplierInput) (*models.Supplier, error)
	List() ([]models.Supplier, error)
	Get(id uint) (*models.Supplier, error)
	Update(id uint, in SupplierInput) (*models.Supplier, error)
	Delete(id uint) error
}

type SupplierHandler struct {
	svc      SupplierProvider
	validate *validator.Validate
}

func NewSupplierHandler(svc SupplierProvider) *SupplierHandler {
	return &SupplierHandler{
		svc:      svc,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *SupplierHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input SupplierInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	supplier, err := h.svc.Create(input)
	if err != nil {
		api.TranslateError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusCreated, toSupplierResponse(supplier))
}

func (h *SupplierHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.svc.List()
	if err != nil {
		api.TranslateError(w, err)
		return
	}

	response := make([]SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		response[i] = toSupplierResponse(&s)
	}
	api.WriteJSON(w, http.StatusOK, response)
}

func (h *SupplierHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := api.ParseID(r)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	supplier, err := h.svc.Get(id)
	if err != nil {
		api.TranslateError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, toSupplierResponse(supplier))
}

func (h *SupplierHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := api.ParseID(r)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var input SupplierInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	supplier, err := h.svc.Update(id, input)
	if err != nil {
		api.TranslateError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, toSupplierResponse(supplier))
}

func (h *SupplierHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
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

func toSupplierResponse(s *models.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:          s.ID,
		Name:        s.Name,
		ContactName: s.ContactName,
		Email:       s.Email,
		Phone:       s.Phone,
		Address:     s.Address,
	}
}
