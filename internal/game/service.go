// Package game is the cycle/save orchestrator: it owns the GameSave aggregate
// and exposes the player-facing state transitions. Every operation is a pure
// transform producing a new save; inputs are never mutated.
package game

import (
	"math/rand"
	"time"

	"github.com/akwawa/guildmaster/internal/catalog"
	"github.com/akwawa/guildmaster/internal/progression"
	"github.com/akwawa/guildmaster/internal/questgen"
	"github.com/akwawa/guildmaster/internal/recruit"
)

// Service bundles the engines the orchestrator delegates to
type Service struct {
	catalog   *catalog.Catalog
	generator *questgen.Generator
	prog      *progression.System
	recruiter *recruit.Generator
	now       func() time.Time
}

// NewService wires the orchestrator with a fresh rand source.
func NewService(cat *catalog.Catalog, seed int64) *Service {
	//nolint:gosec // game mechanics, not cryptography
	rng := rand.New(rand.NewSource(seed))
	return NewServiceWithRand(cat, rng)
}

// NewServiceWithRand wires the orchestrator sharing one rand source across the
// engines, keeping a whole run reproducible from a single seed.
func NewServiceWithRand(cat *catalog.Catalog, rng *rand.Rand) *Service {
	return &Service{
		catalog:   cat,
		generator: questgen.NewGeneratorWithRand(cat, rng),
		prog:      progression.NewSystemWithRand(rng),
		recruiter: recruit.NewGeneratorWithRand(cat, rng),
		now:       time.Now,
	}
}

// Generator exposes the quest generator for read-only views.
func (s *Service) Generator() *questgen.Generator {
	return s.generator
}

// Catalog exposes the injected static data.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}
