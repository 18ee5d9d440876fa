package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/minhtv/stockhouse/internal/product/domain"
	"github.com/minhtv/stockhouse/pkg/logger"
)

// ReferenceHandler serves CRUD endpoints for one reference-data entity
// (categories, brands, warehouses). The entities are small enough that the
// handler talks to the repository directly.
type ReferenceHandler[T any] struct {
	repo domain.ReferenceRepository[T]
	name string
}

// NewReferenceHandler creates a reference handler. name is the plural
// route segment, e.g. "categories".
func NewReferenceHandler[T any](repo domain.ReferenceRepository[T], name string) *ReferenceHandler[T] {
	return &ReferenceHandler[T]{repo: repo, name: name}
}

// Create handles POST /api/{name}
func (h *ReferenceHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	var entity T
	if err := json.NewDecoder(r.Body).Decode(&entity); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := h.repo.Create(&entity); err != nil {
		logger.Logger.Error().Err(err).Str("entity", h.name).Msg("Failed to create reference entity")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Data:    entity,
	})
}

// Get handles GET /api/{name}/{id}
func (h *ReferenceHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid ID"})
		return
	}

	entity, err := h.repo.FindByID(id)
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Not found"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: entity})
}

// List handles GET /api/{name}
func (h *ReferenceHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	entities, err := h.repo.FindAll()
	if err != nil {
		logger.Logger.Error().Err(err).Str("entity", h.name).Msg("Failed to list reference entities")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list " + h.name,
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: entities})
}

// Update handles PUT /api/{name}/{id}
func (h *ReferenceHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid ID"})
		return
	}

	entity, err := h.repo.FindByID(id)
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Not found"})
		return
	}

	// Decode over the loaded entity so omitted fields keep their values.
	if err := json.NewDecoder(r.Body).Decode(entity); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	if err := h.repo.Update(entity); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: entity})
}

// Delete handles DELETE /api/{name}/{id}
func (h *ReferenceHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid ID"})
		return
	}

	if err := h.repo.Delete(id); err != nil {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Deleted successfully"})
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	return uint(id), err
}

// RegisterRoutes registers the CRUD routes under /api/{name}.
func (h *ReferenceHandler[T]) RegisterRoutes(router *mux.Router, authMW, adminMW func(http.HandlerFunc) http.HandlerFunc) {
	base := "/api/" + h.name
	router.HandleFunc(base, authMW(h.List)).Methods("GET")
	router.HandleFunc(base, authMW(h.Create)).Methods("POST")
	router.HandleFunc(base+"/{id}", authMW(h.Get)).Methods("GET")
	router.HandleFunc(base+"/{id}", authMW(h.Update)).Methods("PUT")
	router.HandleFunc(base+"/{id}", adminMW(h.Delete)).Methods("DELETE")
}
