package id

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Generator creates opaque IDs for browser sessions and other external references.
type Generator interface {
	NewID() (string, error)
}

// SessionGenerator issues time-ordered UUIDv7 IDs with an optional prefix,
// so session IDs sort by creation time in logs.
type SessionGenerator struct {
	prefix string
}

func NewSessionGenerator(prefix string) *SessionGenerator {
	return &SessionGenerator{prefix: strings.TrimSpace(prefix)}
}

func (g *SessionGenerator) NewID() (string, error) {
	value, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	if g.prefix == "" {
		return value.String(), nil
	}
	return g.prefix + "_" + value.String(), nil
}
