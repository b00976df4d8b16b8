package paginate

import (
	"time"

	"github.com/charmbracelet/log"
)

const defaultPrefetchLimit = 4

type config struct {
	observer      Observer
	logger        *log.Logger
	debounce      time.Duration
	prefetchLimit int
}

func defaultConfig() config {
	return config{prefetchLimit: defaultPrefetchLimit}
}

// Option configures a Paginator created by New.
type Option func(*config)

// WithObserver attaches an Observer that receives request, skip, success,
// failure and discard events for the lifetime of the paginator.
func WithObserver(o Observer) Option {
	return func(cfg *config) {
		cfg.observer = o
	}
}

// WithLogger logs the request lifecycle to logger. Requests are logged at
// debug level and loader failures at warn level.
func WithLogger(logger *log.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithDebounce delays loads triggered by ReasonInputChange by d. A load whose
// input value changed while waiting is dropped.
func WithDebounce(d time.Duration) Option {
	return func(cfg *config) {
		if d < 0 {
			d = 0
		}
		cfg.debounce = d
	}
}

// WithPrefetchLimit bounds how many keys Prefetch loads at once. Values
// below one fall back to the default of 4.
func WithPrefetchLimit(n int) Option {
	return func(cfg *config) {
		if n < 1 {
			n = defaultPrefetchLimit
		}
		cfg.prefetchLimit = n
	}
}
