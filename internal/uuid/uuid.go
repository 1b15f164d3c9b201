// Package uuid wraps id generation behind an interface so tests can pin ids.
package uuid

import (
	"github.com/google/uuid"
)

// Generator produces unique id strings
type Generator interface {
	New() string
}

// RandomGenerator implements Generator using google/uuid v4 ids
type RandomGenerator struct{}

// NewRandomGenerator creates a new RandomGenerator
func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

// New generates a new UUID string
func (g *RandomGenerator) New() string {
	return uuid.New().String()
}
