// Package rates provides the currency-rate lookup collaborator. The
// pricing engine never converts currency itself; callers resolve display
// conversions through this service. Rates are cached with a time-based
// staleness check and fall back to a static table when the source fails.
package rates

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultTTL is how long a fetched rate table stays fresh.
const DefaultTTL = time.Hour

// Source supplies a rate table keyed by ISO currency code, expressed as
// units of currency per 1 USD.
type Source func() (map[string]float64, error)

// fallbackTable is used before the first successful fetch and whenever the
// source fails. Values are units per 1 USD.
var fallbackTable = map[string]float64{
	"USD": 1,
	"EUR": 0.92,
	"GBP": 0.79,
	"RUB": 92.0,
	"UZS": 12600.0,
}

// FallbackSource returns a Source serving the static fallback table. It is
// the default for offline use.
func FallbackSource() Source {
	return func() (map[string]float64, error) {
		table := make(map[string]float64, len(fallbackTable))
		for code, rate := range fallbackTable {
			table[code] = rate
		}
		return table, nil
	}
}

// Service caches a rate table and refreshes it from its source when stale.
type Service struct {
	logger *zap.Logger
	source Source
	now    func() time.Time
	ttl    time.Duration

	mu        sync.RWMutex
	table     map[string]float64
	fetchedAt time.Time
}

// NewService constructs a rate lookup service. A nil source uses the
// static fallback table; a non-positive ttl uses DefaultTTL.
func NewService(logger *zap.Logger, source Source, ttl time.Duration) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if source == nil {
		source = FallbackSource()
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Service{
		logger: logger,
		source: source,
		now:    time.Now,
		ttl:    ttl,
	}
}

// NewServiceWithClock is the injectable variant used in tests.
func NewServiceWithClock(logger *zap.Logger, source Source, ttl time.Duration, now func() time.Time) *Service {
	s := NewService(logger, source, ttl)
	if now != nil {
		s.now = now
	}
	return s
}

// Rate returns the units-per-USD rate for the given ISO code, refreshing
// the cached table first if it has gone stale. Unknown codes are an error,
// never a zero rate.
func (s *Service) Rate(code string) (float64, error) {
	s.refreshIfStale()

	s.mu.RLock()
	defer s.mu.RUnlock()

	rate, ok := s.table[code]
	if !ok {
		return 0, fmt.Errorf("no rate available for currency %s", code)
	}
	return rate, nil
}

// Convert converts an amount between two currencies through the cached
// table.
func (s *Service) Convert(amount float64, from, to string) (float64, error) {
	fromRate, err := s.Rate(from)
	if err != nil {
		return 0, err
	}
	toRate, err := s.Rate(to)
	if err != nil {
		return 0, err
	}
	return amount / fromRate * toRate, nil
}

// Refresh fetches a new table from the source. On failure the previous
// table (or the static fallback) stays in effect.
func (s *Service) Refresh() error {
	table, err := s.source()
	if err != nil {
		s.logger.Warn("rate refresh failed, keeping previous table",
			zap.String("op", "rates.Refresh"),
			zap.Error(err),
		)
		s.mu.Lock()
		if s.table == nil {
			s.table = copyTable(fallbackTable)
		}
		s.fetchedAt = s.now()
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.table = table
	s.fetchedAt = s.now()
	s.mu.Unlock()

	s.logger.Debug("rate table refreshed",
		zap.String("op", "rates.Refresh"),
		zap.Int("currencies", len(table)),
	)
	return nil
}

func (s *Service) refreshIfStale() {
	s.mu.RLock()
	stale := s.table == nil || s.now().Sub(s.fetchedAt) > s.ttl
	s.mu.RUnlock()

	if stale {
		_ = s.Refresh()
	}
}

func copyTable(table map[string]float64) map[string]float64 {
	copied := make(map[string]float64, len(table))
	for code, rate := range table {
		copied[code] = rate
	}
	return copied
}
