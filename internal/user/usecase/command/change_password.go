package command

import (
	"fmt"

	"github.com/minhtv/stockhouse/internal/user/domain"
	"github.com/minhtv/stockhouse/pkg/auth"
)

// ChangePasswordCommand represents the command to change a user's password
type ChangePasswordCommand struct {
	UserID      uint
	OldPassword string
	NewPassword string
}

// ChangePasswordHandler handles password change command
type ChangePasswordHandler struct {
	repo domain.UserRepository
}

// NewChangePasswordHandler creates a new change password handler
func NewChangePasswordHandler(repo domain.UserRepository) *ChangePasswordHandler {
	return &ChangePasswordHandler{repo: repo}
}

// Handle executes the change password command
func (h *ChangePasswordHandler) Handle(cmd ChangePasswordCommand) error {
	if cmd.UserID == 0 {
		return fmt.Errorf("invalid user id")
	}
	if len(cmd.NewPassword) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}

	user, err := h.repo.FindByID(cmd.UserID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.Password, cmd.OldPassword) {
		return domain.ErrInvalidCredential
	}

	hashed, err := auth.HashPassword(cmd.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.Password = hashed
	if err := h.repo.Update(user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
