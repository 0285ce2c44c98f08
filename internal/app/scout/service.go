// Package scout implements the read-only query service over the roster:
// name search, range filtering with position-weighted ranking, and
// enrichment with projection and negotiation data.
package scout

import (
	"log/slog"

	"scout-data-service/internal/domain"
	"scout-data-service/internal/metrics"
)

const (
	// Two-stage truncation for the filter path: score at most this many
	// surviving candidates, then return only the top ranked few.
	scoredPoolLimit   = 50
	rankedResultLimit = 5

	defaultSearchLimit = 10
)

// Store is the read-only roster the service queries.
type Store interface {
	Players() []domain.Player
	HasNameFields() bool
}

// Service coordinates roster queries using an injected Store. All operations
// are pure computations over the immutable roster and safe for concurrent use.
type Service struct {
	store       Store
	logger      *slog.Logger
	metrics     *metrics.Recorder
	searchLimit int
}

// NewService constructs a Service with the provided Store.
func NewService(store Store, logger *slog.Logger, recorder *metrics.Recorder, searchLimit int) *Service {
	if searchLimit <= 0 {
		searchLimit = defaultSearchLimit
	}
	return &Service{
		store:       store,
		logger:      logger,
		metrics:     recorder,
		searchLimit: searchLimit,
	}
}
