package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/minhtv/stockhouse/internal/inventory/domain"
	"github.com/minhtv/stockhouse/internal/inventory/usecase/command"
	"github.com/minhtv/stockhouse/internal/inventory/usecase/query"
	productdomain "github.com/minhtv/stockhouse/internal/product/domain"
	userhttp "github.com/minhtv/stockhouse/internal/user/delivery/http"
	"github.com/minhtv/stockhouse/pkg/database"
	"github.com/minhtv/stockhouse/pkg/logger"
)

// MovementHandler handles HTTP requests for the stock ledger
type MovementHandler struct {
	createHandler *command.CreateMovementHandler
	updateHandler *command.UpdateMovementHandler
	deleteHandler *command.DeleteMovementHandler

	getHandler    *query.GetMovementHandler
	listHandler   *query.ListMovementsHandler
	reportHandler *query.GetReportHandler
	exportHandler *query.ExportReportHandler
}

// NewMovementHandler creates a new movement handler
func NewMovementHandler(tx database.TxRunner, movements domain.MovementRepository, products productdomain.ProductRepository) *MovementHandler {
	report := query.NewGetReportHandler(movements, products)
	return &MovementHandler{
		createHandler: command.NewCreateMovementHandler(tx, movements, products),
		updateHandler: command.NewUpdateMovementHandler(tx, movements, products),
		deleteHandler: command.NewDeleteMovementHandler(tx, movements, products),
		getHandler:    query.NewGetMovementHandler(movements),
		listHandler:   query.NewListMovementsHandler(movements),
		reportHandler: report,
		exportHandler: query.NewExportReportHandler(report),
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// CreateMovement handles POST /api/movements
func (h *MovementHandler) CreateMovement(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Direction string   `json:"direction"`
		ProductID uint     `json:"product_id"`
		Quantity  int      `json:"quantity"`
		UnitPrice *float64 `json:"unit_price"`
		Note      string   `json:"note"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	userID, _ := r.Context().Value(userhttp.UserIDKey).(uint)

	cmd := command.CreateMovementCommand{
		Direction:   domain.MovementDirection(req.Direction),
		ProductID:   req.ProductID,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		Note:        req.Note,
		CreatedByID: userID,
	}

	movement, err := h.createHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create stock movement")
		respondJSON(w, movementErrStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Stock movement recorded successfully",
		Data:    movement,
	})
}

// GetMovement handles GET /api/movements/{id}
func (h *MovementHandler) GetMovement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid movement ID"})
		return
	}

	movement, err := h.getHandler.Handle(query.GetMovementQuery{ID: id})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Stock movement not found"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: movement})
}

// ListMovements handles GET /api/movements
func (h *MovementHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	direction := domain.MovementDirection(r.URL.Query().Get("direction"))

	movements, err := h.listHandler.Handle(query.ListMovementsQuery{
		Direction: direction,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrInvalidDirection) {
			status = http.StatusBadRequest
		}
		respondJSON(w, status, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: movements})
}

// UpdateMovement handles PUT /api/movements/{id}
func (h *MovementHandler) UpdateMovement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid movement ID"})
		return
	}

	var req struct {
		ProductID *uint    `json:"product_id"`
		Quantity  *int     `json:"quantity"`
		UnitPrice *float64 `json:"unit_price"`
		Note      *string  `json:"note"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	cmd := command.UpdateMovementCommand{
		ID:        id,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		Note:      req.Note,
	}

	movement, err := h.updateHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Uint("movement_id", id).Msg("Failed to update stock movement")
		respondJSON(w, movementErrStatus(err), Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock movement updated successfully",
		Data:    movement,
	})
}

// DeleteMovement handles DELETE /api/movements/{id}
func (h *MovementHandler) DeleteMovement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid movement ID"})
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteMovementCommand{ID: id}); err != nil {
		respondJSON(w, movementErrStatus(err), Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock movement deleted successfully",
	})
}

// GetReport handles GET /api/inventory/report
func (h *MovementHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	productID, _ := strconv.ParseUint(r.URL.Query().Get("product_id"), 10, 32)

	rows, err := h.reportHandler.Handle(query.GetReportQuery{ProductID: uint(productID)})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to build inventory report")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to build inventory report",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: rows})
}

// ExportReport handles GET /api/inventory/report/export
func (h *MovementHandler) ExportReport(w http.ResponseWriter, r *http.Request) {
	productID, _ := strconv.ParseUint(r.URL.Query().Get("product_id"), 10, 32)

	data, err := h.exportHandler.Handle(query.GetReportQuery{ProductID: uint(productID)})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to export inventory report")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to export inventory report",
		})
		return
	}

	filename := fmt.Sprintf("inventory-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// movementErrStatus maps domain errors onto HTTP status codes.
func movementErrStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrMovementNotFound),
		errors.Is(err, productdomain.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, productdomain.ErrInsufficientStock):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	return uint(id), err
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// RegisterRoutes registers all stock ledger routes
func (h *MovementHandler) RegisterRoutes(router *mux.Router, authMW, adminMW func(http.HandlerFunc) http.HandlerFunc) {
	router.HandleFunc("/api/movements", authMW(h.ListMovements)).Methods("GET")
	router.HandleFunc("/api/movements", authMW(h.CreateMovement)).Methods("POST")
	router.HandleFunc("/api/movements/{id}", authMW(h.GetMovement)).Methods("GET")
	router.HandleFunc("/api/movements/{id}", authMW(h.UpdateMovement)).Methods("PUT")
	router.HandleFunc("/api/movements/{id}", adminMW(h.DeleteMovement)).Methods("DELETE")

	router.HandleFunc("/api/inventory/report", authMW(h.GetReport)).Methods("GET")
	router.HandleFunc("/api/inventory/report/export", authMW(h.ExportReport)).Methods("GET")
}
