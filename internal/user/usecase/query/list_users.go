package query

import (
	"github.com/minhtv/stockhouse/internal/user/domain"
)

// ListUsersQuery represents a query to list users
type ListUsersQuery struct {
	Limit  int
	Offset int
}

// ListUsersResult holds one page of users plus the total count.
type ListUsersResult struct {
	Users  []domain.User `json:"users"`
	Total  int64         `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// ListUsersHandler handles list users query
type ListUsersHandler struct {
	repo domain.UserRepository
}

// NewListUsersHandler creates a new list users handler
func NewListUsersHandler(repo domain.UserRepository) *ListUsersHandler {
	return &ListUsersHandler{repo: repo}
}

// Handle executes the list users query
func (h *ListUsersHandler) Handle(q ListUsersQuery) (*ListUsersResult, error) {
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 20
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	users, err := h.repo.FindAll(q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}
	total, err := h.repo.Count()
	if err != nil {
		return nil, err
	}

	return &ListUsersResult{
		Users:  users,
		Total:  total,
		Limit:  q.Limit,
		Offset: q.Offset,
	}, nil
}
