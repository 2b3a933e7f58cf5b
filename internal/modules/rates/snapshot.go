// Package rates holds the injected reference-rate snapshot consumed by
// the simulation engine. The engine never fetches rates itself: whatever
// collaborator owns market data pushes a new snapshot through the API and
// the registry swaps it atomically.
package rates

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Snapshot is a point-in-time bundle of reference rates. All values are
// nominal annual percentages. A Snapshot is a value; once handed out it is
// never mutated, so every computation in a batch sees consistent rates.
type Snapshot struct {
	CDI        float64   `json:"cdi"`
	SELIC      float64   `json:"selic"`
	IPCA       float64   `json:"ipca"`
	CapturedAt time.Time `json:"captured_at"`
}

// RateFor returns the reference rate for the named indexer. Unknown or
// empty indexer names fall back to CDI, the default indexer for
// fixed-income products.
func (s Snapshot) RateFor(indexer string) float64 {
	switch indexer {
	case "SELIC":
		return s.SELIC
	case "IPCA":
		return s.IPCA
	default:
		return s.CDI
	}
}

// Age returns how long ago the snapshot was captured.
func (s Snapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.CapturedAt)
}

// Registry is the single holder of the current snapshot. Reads vastly
// outnumber writes, so it uses a RWMutex and hands out copies.
type Registry struct {
	mu      sync.RWMutex
	current Snapshot
	log     zerolog.Logger
}

// NewRegistry creates a registry seeded with the given snapshot.
func NewRegistry(initial Snapshot, log zerolog.Logger) *Registry {
	if initial.CapturedAt.IsZero() {
		initial.CapturedAt = time.Now()
	}
	return &Registry{
		current: initial,
		log:     log.With().Str("component", "rates_registry").Logger(),
	}
}

// Current returns a copy of the current snapshot.
func (r *Registry) Current() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Replace swaps in a new snapshot. A zero CapturedAt is stamped with the
// current time.
func (r *Registry) Replace(s Snapshot) {
	if s.CapturedAt.IsZero() {
		s.CapturedAt = time.Now()
	}
	r.mu.Lock()
	r.current = s
	r.mu.Unlock()

	r.log.Info().
		Float64("cdi", s.CDI).
		Float64("selic", s.SELIC).
		Float64("ipca", s.IPCA).
		Time("captured_at", s.CapturedAt).
		Msg("Rate snapshot replaced")
}
