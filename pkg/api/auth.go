package api

import (
	"github.com/example/storefront/pkg/models"
	"github.com/example/storefront/pkg/store"
)

// Authenticator resolves a bearer token to a user. Real token issuance
// and verification happen outside this service; anything implementing
// this interface can be plugged in.
type Authenticator interface {
	Authenticate(token string) (models.User, bool)
}

// StaticTokens authenticates against a fixed token-to-email table from
// configuration. Suitable for development and tests.
type StaticTokens struct {
	tokens map[string]string
	users  *store.Users
}

func NewStaticTokens(tokens map[string]string, users *store.Users) *StaticTokens {
	return &StaticTokens{tokens: tokens, users: users}
}

func (s *StaticTokens) Authenticate(token string) (models.User, bool) {
	email, ok := s.tokens[token]
	if !ok {
		return models.User{}, false
	}
	return s.users.FindByEmail(email)
}
