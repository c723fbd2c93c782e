package handlers

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"gopkg.in/yaml.v3"
)

// OpenAPIHandler serves the API description
type OpenAPIHandler struct {
	path string
}

// NewOpenAPIHandler creates a handler serving the YAML document at path
func NewOpenAPIHandler(path string) *OpenAPIHandler {
	return &OpenAPIHandler{path: path}
}

// RegisterRoutes registers OpenAPI routes
func (h *OpenAPIHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/openapi.yaml", h.ServeYAML).Methods(http.MethodGet)
	r.HandleFunc("/openapi.json", h.ServeJSON).Methods(http.MethodGet)
}

// ServeYAML serves the document as stored
func (h *OpenAPIHandler) ServeYAML(w http.ResponseWriter, r *http.Request) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		respondJSONError(w, http.StatusNotFound, "OpenAPI specification not found")
		return
	}

	w.Header().Set("Content-Type", "application/x-yaml")
	_, _ = w.Write(data)
}

// ServeJSON converts the YAML document to JSON
func (h *OpenAPIHandler) ServeJSON(w http.ResponseWriter, r *http.Request) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		respondJSONError(w, http.StatusNotFound, "OpenAPI specification not found")
		return
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		respondJSONError(w, http.StatusInternalServerError, "Failed to parse OpenAPI specification")
		return
	}
	respondJSON(w, http.StatusOK, doc)
}
