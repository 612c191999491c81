// Package weather turns Open-Meteo forecasts into the site's weather card and
// caches the last live reading.
package weather

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/olupoagric/storefront/internal/domain/models"
	"github.com/olupoagric/storefront/pkg/clients/openmeteo"
)

// UnavailableMessage is shown next to the default card when the upstream call fails.
const UnavailableMessage = "Unable to load live weather data right now."

// Report is what the weather card renders.
type Report struct {
	Weather   models.Weather `json:"weather"`
	Live      bool           `json:"live"`
	Error     string         `json:"error,omitempty"`
	FetchedAt time.Time      `json:"fetched_at"`
}

// Service fetches and caches current conditions.
type Service struct {
	client openmeteo.Client
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time

	mu   sync.RWMutex
	last *Report
}

// NewService wires the forecast client. A zero ttl disables caching.
func NewService(client openmeteo.Client, ttl time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

// Current returns the cached live report while it is fresh, otherwise it
// refreshes.
func (s *Service) Current(ctx context.Context) Report {
	s.mu.RLock()
	last := s.last
	s.mu.RUnlock()

	if last != nil && s.ttl > 0 && s.now().Sub(last.FetchedAt) < s.ttl {
		return *last
	}
	return s.Refresh(ctx)
}

// Refresh calls the upstream regardless of the cache. Failures yield the
// default card with UnavailableMessage and leave the cache untouched.
func (s *Service) Refresh(ctx context.Context) Report {
	forecast, err := s.client.Forecast(ctx)
	if err != nil {
		s.logger.Warn("weather refresh failed", zap.Error(err))
		return Report{
			Weather:   models.DefaultWeather(),
			Error:     UnavailableMessage,
			FetchedAt: s.now(),
		}
	}

	report := Report{
		Weather:   FromForecast(forecast),
		Live:      true,
		FetchedAt: s.now(),
	}

	s.mu.Lock()
	s.last = &report
	s.mu.Unlock()

	s.logger.Debug("weather refreshed",
		zap.Float64("temperature", report.Weather.Temperature),
		zap.String("condition", report.Weather.Condition),
	)
	return report
}
