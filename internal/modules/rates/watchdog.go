package rates

import (
	"time"

	"github.com/rs/zerolog"
)

// StalenessWatchdog is a scheduled job that flags an aging rate snapshot.
// It never fetches rates; it only observes the registry and logs, so a
// stale snapshot is visible in the logs before it silently skews results.
type StalenessWatchdog struct {
	registry *Registry
	maxAge   time.Duration
	log      zerolog.Logger
}

// NewStalenessWatchdog creates a watchdog for the given registry.
func NewStalenessWatchdog(registry *Registry, maxAge time.Duration, log zerolog.Logger) *StalenessWatchdog {
	return &StalenessWatchdog{
		registry: registry,
		maxAge:   maxAge,
		log:      log.With().Str("job", "snapshot_staleness").Logger(),
	}
}

// Name returns the job name for scheduler logging.
func (w *StalenessWatchdog) Name() string {
	return "snapshot_staleness"
}

// Run checks the snapshot age against the configured threshold.
func (w *StalenessWatchdog) Run() error {
	snapshot := w.registry.Current()
	age := snapshot.Age(time.Now())

	if age > w.maxAge {
		w.log.Warn().
			Dur("age", age).
			Dur("max_age", w.maxAge).
			Time("captured_at", snapshot.CapturedAt).
			Msg("Rate snapshot is stale, computations use outdated rates")
		return nil
	}

	w.log.Debug().Dur("age", age).Msg("Rate snapshot is fresh")
	return nil
}
