package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Abubakar-88/jugjiggasha/internal/models"
	"github.com/Abubakar-88/jugjiggasha/internal/services"
)

const msgCategoryLoadFailure = "ক্যাটাগরি লোড করতে সমস্যা হয়েছে"

// CategoryHandler handles HTTP requests related to categories.
type CategoryHandler struct {
	service services.CategoryServiceProvider
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service services.CategoryServiceProvider) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// GetAll handles the request to get all categories.
func (h *CategoryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	categories, fromCache, err := h.service.List(r.Context())
	if err != nil {
		http.Error(w, msgCategoryLoadFailure, http.StatusBadGateway)
		return
	}
	writeCachedJSON(w, categories, fromCache)
}

// Get handles the request to get a single category by its ID.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	category, err := h.service.Get(r.Context(), id)
	if err != nil {
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(category)
}

// Create handles an admin creating a category.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload models.CategoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(payload.Name) == "" {
		http.Error(w, "Category name is required", http.StatusBadRequest)
		return
	}

	category, err := h.service.Create(r.Context(), payload)
	if err != nil {
		http.Error(w, "Failed to create category", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(category)
}

// Update handles an admin editing a category.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var payload models.CategoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	category, err := h.service.Update(r.Context(), id, payload)
	if err != nil {
		http.Error(w, "Failed to update category", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(category)
}

// Delete handles an admin removing a category.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		http.Error(w, "Failed to delete category", http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
