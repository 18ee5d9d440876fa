package query

import (
	"github.com/minhtv/stockhouse/internal/inventory/domain"
)

// ListMovementsQuery represents the query to list movements, optionally
// filtered by direction.
type ListMovementsQuery struct {
	Direction domain.MovementDirection
	Limit     int
	Offset    int
}

// ListMovementsHandler handles list movements query
type ListMovementsHandler struct {
	repo domain.MovementRepository
}

// NewListMovementsHandler creates a new list movements handler
func NewListMovementsHandler(repo domain.MovementRepository) *ListMovementsHandler {
	return &ListMovementsHandler{repo: repo}
}

// Handle executes the list movements query
func (h *ListMovementsHandler) Handle(q ListMovementsQuery) ([]domain.StockMovement, error) {
	if q.Direction != "" && !q.Direction.Valid() {
		return nil, domain.ErrInvalidDirection
	}
	if q.Limit <= 0 {
		q.Limit = 20
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return h.repo.FindAll(q.Direction, q.Limit, q.Offset)
}
