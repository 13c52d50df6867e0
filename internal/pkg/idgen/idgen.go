// Package idgen provides the id generators injected into the feature store.
package idgen

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

const (
	StrategyUUID     = "uuid"
	StrategySequence = "sequence"
)

// Generator hands out identifiers that are unique for the life of the process.
type Generator interface {
	NewId() string
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewId() string {
	return uuid.NewString()
}

// SequenceGenerator yields prefix1, prefix2, ... and never reuses a value.
type SequenceGenerator struct {
	prefix string
	next   atomic.Uint64
}

func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

func (g *SequenceGenerator) NewId() string {
	return fmt.Sprintf("%s%d", g.prefix, g.next.Add(1))
}

// FromStrategy builds the generator named by config.
func FromStrategy(strategy string) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case "", StrategyUUID:
		return NewUUIDGenerator(), nil
	case StrategySequence:
		return NewSequenceGenerator("f"), nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}
