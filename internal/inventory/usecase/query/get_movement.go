package query

import (
	"fmt"

	"github.com/minhtv/stockhouse/internal/inventory/domain"
)

// GetMovementQuery represents the query to get a movement by ID
type GetMovementQuery struct {
	ID uint
}

// GetMovementHandler handles get movement query
type GetMovementHandler struct {
	repo domain.MovementRepository
}

// NewGetMovementHandler creates a new get movement handler
func NewGetMovementHandler(repo domain.MovementRepository) *GetMovementHandler {
	return &GetMovementHandler{repo: repo}
}

// Handle executes the get movement query
func (h *GetMovementHandler) Handle(q GetMovementQuery) (*domain.StockMovement, error) {
	if q.ID == 0 {
		return nil, fmt.Errorf("invalid movement id")
	}
	return h.repo.FindByID(q.ID)
}
