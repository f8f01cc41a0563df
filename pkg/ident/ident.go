// Package ident provides id generation for store records. Uniqueness
// is a property of the chosen generator, not of the stores.
package ident

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces opaque unique ids.
type Generator interface {
	NewID() string
}

// UUID generates random 128-bit ids.
type UUID struct{}

func (UUID) NewID() string {
	return uuid.NewString()
}

// Sequence generates deterministic ids ("p-1", "p-2", ...) for tests.
type Sequence struct {
	Prefix string
	n      uint64
}

func (s *Sequence) NewID() string {
	return fmt.Sprintf("%s-%d", s.Prefix, atomic.AddUint64(&s.n, 1))
}
