package store

import (
	"strings"
	"sync"
	"time"

	"github.com/example/storefront/pkg/ident"
	"github.com/example/storefront/pkg/models"
)

// UserInput carries the fields for a new user record.
type UserInput struct {
	Email string
	Name  string
	Role  string
}

// UserPatch is a partial profile update. Nil fields stay untouched.
type UserPatch struct {
	Email *string
	Name  *string
	Role  *string
}

// Users holds user records.
type Users struct {
	mu    sync.Mutex
	ids   ident.Generator
	users []*models.User
	index map[string]*models.User
}

// NewUsers builds an empty user store.
func NewUsers(ids ident.Generator) *Users {
	return &Users{
		ids:   ids,
		index: make(map[string]*models.User),
	}
}

// Create stores a new user. Role defaults to "user" when empty.
func (u *Users) Create(input UserInput) models.User {
	role := input.Role
	if role == "" {
		role = models.RoleUser
	}
	now := time.Now()
	user := &models.User{
		ID:        u.ids.NewID(),
		Email:     input.Email,
		Name:      input.Name,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.users = append(u.users, user)
	u.index[user.ID] = user
	return *user
}

// Get looks a user up by id.
func (u *Users) Get(id string) (models.User, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	user, ok := u.index[id]
	if !ok {
		return models.User{}, false
	}
	return *user, true
}

// FindByEmail returns the first user with the given email,
// case-insensitively.
func (u *Users) FindByEmail(email string) (models.User, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, user := range u.users {
		if strings.EqualFold(user.Email, email) {
			return *user, true
		}
	}
	return models.User{}, false
}

// List returns every user in insertion order.
func (u *Users) List() []models.User {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]models.User, len(u.users))
	for i, user := range u.users {
		out[i] = *user
	}
	return out
}

// Update merges the patch over the user record and refreshes
// UpdatedAt. Returns false when id is unknown.
func (u *Users) Update(id string, patch UserPatch) (models.User, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	user, ok := u.index[id]
	if !ok {
		return models.User{}, false
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	user.UpdatedAt = time.Now()
	return *user, true
}
