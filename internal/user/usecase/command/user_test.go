package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhtv/stockhouse/internal/user/domain"
	"github.com/minhtv/stockhouse/pkg/auth"
)

type fakeUserRepo struct {
	users  map[uint]*domain.User
	nextID uint
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uint]*domain.User), nextID: 1}
	for _, u := range users {
		repo.users[u.ID] = u
		if u.ID >= repo.nextID {
			repo.nextID = u.ID + 1
		}
	}
	return repo
}

func (r *fakeUserRepo) Create(u *domain.User) error {
	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) FindAll(limit, offset int) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(u *domain.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(id uint) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) Count() (int64, error) {
	return int64(len(r.users)), nil
}

func seededUser(t *testing.T, repo *fakeUserRepo, username, password, role string, active bool) *domain.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	user := &domain.User{Username: username, Password: hash, Role: role, IsActive: active}
	require.NoError(t, repo.Create(user))
	return user
}

func TestCreateUserHashesPasswordAndDefaultsRole(t *testing.T) {
	repo := newFakeUserRepo()
	handler := NewCreateUserHandler(repo)

	user, err := handler.Handle(CreateUserCommand{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	assert.Equal(t, domain.RoleStaff, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "secret123", user.Password)
	assert.True(t, auth.CheckPassword(user.Password, "secret123"))
}

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	handler := NewCreateUserHandler(repo)

	_, err := handler.Handle(CreateUserCommand{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	_, err = handler.Handle(CreateUserCommand{Username: "alice", Password: "different1"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestCreateUserValidation(t *testing.T) {
	repo := newFakeUserRepo()
	handler := NewCreateUserHandler(repo)

	_, err := handler.Handle(CreateUserCommand{Password: "secret123"})
	assert.Error(t, err, "missing username")

	_, err = handler.Handle(CreateUserCommand{Username: "alice", Password: "short"})
	assert.Error(t, err, "password under six characters")

	_, err = handler.Handle(CreateUserCommand{Username: "alice", Password: "secret123", Role: "superuser"})
	assert.Error(t, err, "unknown role")
}

func TestLoginIssuesToken(t *testing.T) {
	repo := newFakeUserRepo()
	seededUser(t, repo, "alice", "secret123", domain.RoleAdmin, true)
	handler := NewLoginUserHandler(repo)

	resp, err := handler.Handle(LoginUserCommand{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := auth.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	seededUser(t, repo, "alice", "secret123", domain.RoleStaff, true)
	handler := NewLoginUserHandler(repo)

	_, err := handler.Handle(LoginUserCommand{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)

	// Unknown user gets the same error as a bad password.
	_, err = handler.Handle(LoginUserCommand{Username: "bob", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)
}

func TestLoginRejectsDisabledAccount(t *testing.T) {
	repo := newFakeUserRepo()
	seededUser(t, repo, "alice", "secret123", domain.RoleStaff, false)
	handler := NewLoginUserHandler(repo)

	_, err := handler.Handle(LoginUserCommand{Username: "alice", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrUserDisabled)
}

func TestChangePassword(t *testing.T) {
	repo := newFakeUserRepo()
	user := seededUser(t, repo, "alice", "secret123", domain.RoleStaff, true)
	handler := NewChangePasswordHandler(repo)

	err := handler.Handle(ChangePasswordCommand{UserID: user.ID, OldPassword: "wrong", NewPassword: "newsecret1"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)

	err = handler.Handle(ChangePasswordCommand{UserID: user.ID, OldPassword: "secret123", NewPassword: "short"})
	assert.Error(t, err, "new password under six characters")

	err = handler.Handle(ChangePasswordCommand{UserID: user.ID, OldPassword: "secret123", NewPassword: "newsecret1"})
	require.NoError(t, err)

	stored, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(stored.Password, "newsecret1"))
	assert.False(t, auth.CheckPassword(stored.Password, "secret123"))
}

func TestToggleActive(t *testing.T) {
	repo := newFakeUserRepo()
	user := seededUser(t, repo, "alice", "secret123", domain.RoleStaff, true)
	handler := NewToggleActiveHandler(repo)

	updated, err := handler.Handle(ToggleActiveCommand{UserID: user.ID, IsActive: false})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	stored, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
}
