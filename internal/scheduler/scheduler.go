package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/olupoagric/storefront/internal/service/weather"
)

const refreshTimeout = 30 * time.Second

// WeatherRefresher refreshes the cached weather report.
type WeatherRefresher interface {
	Refresh(ctx context.Context) weather.Report
}

// SessionSweeper drops visitor state idle for longer than maxIdle.
type SessionSweeper interface {
	Sweep(maxIdle time.Duration) int
}

// Config holds the job schedules. Schedules use the standard five-field cron
// syntax or descriptors such as "@every 15m".
type Config struct {
	WeatherSchedule string
	SessionSchedule string
	SessionMaxIdle  time.Duration
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron     *cron.Cron
	weather  WeatherRefresher
	sessions SessionSweeper
	cfg      Config
	logger   *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg Config, weatherSvc WeatherRefresher, sessions SessionSweeper, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:     cron.New(),
		weather:  weatherSvc,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
	}
}

// Start registers the jobs and starts the scheduler.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler",
		zap.String("weather_schedule", s.cfg.WeatherSchedule),
		zap.String("session_schedule", s.cfg.SessionSchedule),
	)

	if _, err := s.cron.AddFunc(s.cfg.WeatherSchedule, s.refreshWeather); err != nil {
		return fmt.Errorf("schedule weather refresh %q: %w", s.cfg.WeatherSchedule, err)
	}
	if _, err := s.cron.AddFunc(s.cfg.SessionSchedule, s.sweepSessions); err != nil {
		return fmt.Errorf("schedule session sweep %q: %w", s.cfg.SessionSchedule, err)
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) refreshWeather() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	report := s.weather.Refresh(ctx)
	if !report.Live {
		s.logger.Warn("scheduled weather refresh fell back to defaults", zap.String("error", report.Error))
		return
	}
	s.logger.Debug("scheduled weather refresh done")
}

func (s *Scheduler) sweepSessions() {
	removed := s.sessions.Sweep(s.cfg.SessionMaxIdle)
	if removed > 0 {
		s.logger.Info("swept idle sessions",
			zap.Int("removed", removed),
			zap.Duration("max_idle", s.cfg.SessionMaxIdle),
		)
	}
}
