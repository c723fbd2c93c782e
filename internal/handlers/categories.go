package handlers

import (
	"net/http"

	"github.com/benvon/zenith-task/internal/store"
	"github.com/benvon/zenith-task/internal/validation"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// CategoryHandler handles category requests
type CategoryHandler struct {
	store  store.TaskStore
	logger *zap.Logger
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(s store.TaskStore, logger *zap.Logger) *CategoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CategoryHandler{store: s, logger: logger}
}

// RegisterRoutes registers category routes on the given router
func (h *CategoryHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/categories", h.ListCategories).Methods(http.MethodGet)
	r.HandleFunc("/categories", h.CreateCategory).Methods(http.MethodPost)
}

// CreateCategoryRequest represents a create category request
type CreateCategoryRequest struct {
	Category string `json:"category" validate:"max=200"`
}

// ListCategories returns all category names
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.store.ListCategories(r.Context())
	if err != nil {
		respondStoreError(w, h.logger, err, nil)
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

// CreateCategory adds a category. Names are trimmed; empty and duplicate
// names are rejected.
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	name, err := h.store.CreateCategory(r.Context(), validation.SanitizeText(req.Category))
	if err != nil {
		respondStoreError(w, h.logger, err, map[error]string{
			store.ErrInvalidInput: "Category name cannot be empty!",
			store.ErrConflict:     "Category already exists!",
		})
		return
	}

	h.logger.Info("category_created", zap.String("category", name))
	respondJSON(w, http.StatusOK, MessageResponse{Message: "Category created!", Category: name})
}
