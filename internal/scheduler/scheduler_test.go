package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/olupoagric/storefront/internal/service/session"
	"github.com/olupoagric/storefront/internal/service/weather"
	"github.com/olupoagric/storefront/internal/view"
)

type countingRefresher struct {
	calls atomic.Int32
	live  bool
}

func (c *countingRefresher) Refresh(context.Context) weather.Report {
	c.calls.Add(1)
	return weather.Report{Live: c.live}
}

type recordingSweeper struct {
	maxIdle []time.Duration
	removed int
}

func (r *recordingSweeper) Sweep(maxIdle time.Duration) int {
	r.maxIdle = append(r.maxIdle, maxIdle)
	return r.removed
}

func testConfig() Config {
	return Config{
		WeatherSchedule: "@every 1h",
		SessionSchedule: "@every 10m",
		SessionMaxIdle:  2 * time.Hour,
	}
}

func TestStartStop_NoLeak(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := NewScheduler(testConfig(), &countingRefresher{live: true}, &recordingSweeper{}, nil)
	require.NoError(t, s.Start())
	s.Stop()
}

func TestStart_InvalidSchedule(t *testing.T) {
	cfg := testConfig()
	cfg.WeatherSchedule = "every so often"
	s := NewScheduler(cfg, &countingRefresher{}, &recordingSweeper{}, nil)
	err := s.Start()
	assert.ErrorContains(t, err, "schedule weather refresh")
}

func TestStart_InvalidSessionSchedule(t *testing.T) {
	cfg := testConfig()
	cfg.SessionSchedule = "now and then"
	s := NewScheduler(cfg, &countingRefresher{}, &recordingSweeper{}, nil)
	err := s.Start()
	assert.ErrorContains(t, err, "schedule session sweep")
}

func TestRefreshWeather(t *testing.T) {
	refresher := &countingRefresher{}
	s := NewScheduler(testConfig(), refresher, &recordingSweeper{}, nil)

	s.refreshWeather()
	refresher.live = true
	s.refreshWeather()

	assert.Equal(t, int32(2), refresher.calls.Load())
}

func TestSweepSessions_PassesMaxIdle(t *testing.T) {
	sweeper := &recordingSweeper{removed: 3}
	s := NewScheduler(testConfig(), &countingRefresher{}, sweeper, nil)

	s.sweepSessions()
	s.sweepSessions()

	assert.Equal(t, []time.Duration{2 * time.Hour, 2 * time.Hour}, sweeper.maxIdle)
}

func TestSweepSessions_EvictsVisitorsPastMaxIdle(t *testing.T) {
	sessions := session.NewManager()
	sessions.Dispatch("v1", view.WeatherRequested{})
	require.Equal(t, 1, sessions.Len())

	cfg := testConfig()
	cfg.SessionMaxIdle = -time.Second
	s := NewScheduler(cfg, &countingRefresher{}, sessions, nil)
	s.sweepSessions()

	assert.Equal(t, 0, sessions.Len())
}
