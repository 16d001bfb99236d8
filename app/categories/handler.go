package categories

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/BBojan94/InventoryManagement/app/api"
	"github.com/BBojan94/InventoryManagement/models"
)

type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CategoryProvider interface {
	Create(in CategoryInput) (*models.Category, error)
	List() ([]models.Category, error)
	Get(id uint) (*models.Category, error)
	Update(id uint, in CategoryInput) (*models.Category, error)
	Delete(id uint) error
}

type CategoryHandler struct {
	svc      CategoryProvider
	validate *validator.Validate
}

func NewCategoryHandler(svc CategoryProvider) *CategoryHandler {
	return &CategoryHandler{
		svc:      svc,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.svc.Create(input)
	if err != nil {
		api.TranslateError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusCreated, toCategoryResponse(category))
}

func (h *CategoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.List()
	if err != nil {
		api.TranslateError(w, err)
		return
	}

	response := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		response[i] = toCategoryResponse(&c)
	}
	api.WriteJSON(w, http.StatusOK, response)
}

func (h *CategoryHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := api.ParseID(r)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	category, err := h.svc.Get(id)
	if err != nil {
		api.TranslateError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, toCategoryResponse(category))
}

func (h *CategoryHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := api.ParseID(r)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var input CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.svc.Update(id, input)
	if err != nil {
		api.TranslateError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, toCategoryResponse(category))
}

func (h *CategoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
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

func toCategoryResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}
