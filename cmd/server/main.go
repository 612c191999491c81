package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/olupoagric/storefront/internal/config"
	"github.com/olupoagric/storefront/internal/purchase"
	"github.com/olupoagric/storefront/internal/repository/mongodb"
	"github.com/olupoagric/storefront/internal/repository/sheets"
	"github.com/olupoagric/storefront/internal/repository/supabase"
	"github.com/olupoagric/storefront/internal/scheduler"
	"github.com/olupoagric/storefront/internal/server/handlers"
	"github.com/olupoagric/storefront/internal/server/router"
	advisorsvc "github.com/olupoagric/storefront/internal/service/advisor"
	catalogsvc "github.com/olupoagric/storefront/internal/service/catalog"
	"github.com/olupoagric/storefront/internal/service/session"
	weathersvc "github.com/olupoagric/storefront/internal/service/weather"
	"github.com/olupoagric/storefront/pkg/clients/anthropic"
	"github.com/olupoagric/storefront/pkg/clients/openai"
	"github.com/olupoagric/storefront/pkg/clients/openmeteo"
	"github.com/olupoagric/storefront/pkg/logger"
)

func main() {
	envFile := pflag.String("env-file", "", "path to a .env file (defaults to ./.env when present)")
	pflag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Server.LogLevel))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	source, closeSource, err := newCatalogSource(context.Background(), cfg, baseLogger)
	if err != nil {
		baseLogger.Fatal("failed to init catalog store", zap.String("backend", cfg.Catalog.Backend), zap.Error(err))
	}
	defer closeSource()

	catalog := catalogsvc.NewService(source, baseLogger.Named("svc.catalog"))

	completer := newCompleter(cfg.AI)
	if completer == nil {
		baseLogger.Warn("ai api key missing, assistant runs with canned guidance")
	} else {
		baseLogger.Info("ai assistant enabled", zap.String("provider", cfg.AI.Provider))
	}
	advisor := advisorsvc.NewService(completer, baseLogger.Named("svc.advisor"))

	forecaster := openmeteo.NewClient(openmeteo.Config{
		BaseURL:   cfg.Weather.BaseURL,
		Latitude:  cfg.Weather.Latitude,
		Longitude: cfg.Weather.Longitude,
		Timezone:  cfg.Weather.Timezone,
	})
	weather := weathersvc.NewService(forecaster, cfg.Weather.CacheTTL, baseLogger.Named("svc.weather"))

	composer := purchase.NewComposer(
		purchase.Destination{Host: cfg.Purchase.MessagingHost, PhoneNumber: cfg.Purchase.WhatsAppNumber},
		purchase.BankDetails{
			BankName:      cfg.Purchase.BankName,
			AccountNumber: cfg.Purchase.AccountNumber,
			AccountName:   cfg.Purchase.AccountName,
		},
	)
	sessions := session.NewManager()

	engine := router.New(router.Handlers{
		Catalog:  handlers.NewCatalogHandler(catalog, composer, baseLogger.Named("handlers.catalog")),
		Calendar: handlers.NewCalendarHandler(catalog, advisor, weather, sessions, baseLogger.Named("handlers.calendar")),
		Session:  handlers.NewSessionHandler(sessions, catalog, composer, baseLogger.Named("handlers.session")),
	}, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(scheduler.Config{
		WeatherSchedule: cfg.Weather.RefreshSchedule,
		SessionSchedule: cfg.Session.SweepSchedule,
		SessionMaxIdle:  cfg.Session.MaxIdle,
	}, weather, sessions, baseLogger.Named("scheduler"))
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// newCatalogSource connects the configured store. The returned func releases
// it.
func newCatalogSource(ctx context.Context, cfg *config.Config, log *zap.Logger) (catalogsvc.Source, func(), error) {
	noop := func() {}

	switch cfg.Catalog.Backend {
	case config.BackendSupabase:
		return supabase.NewRepository(cfg.Supabase, log.Named("repo.supabase")), noop, nil
	case config.BackendMongoDB:
		connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
		defer cancel()
		repo, err := mongodb.NewMongoDBRepository(connectCtx, cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			return nil, noop, err
		}
		closeRepo := func() {
			if err := repo.Close(context.Background()); err != nil {
				log.Error("failed to close mongodb connection", zap.Error(err))
			}
		}
		return repo, closeRepo, nil
	case config.BackendSheets:
		repo, err := sheets.NewGoogleSheetRepository(ctx, cfg.Sheets, log.Named("repo.sheets"))
		if err != nil {
			return nil, noop, err
		}
		return sheets.NewCatalog(repo, cfg.Sheets.ProductsRange, cfg.Sheets.CalendarRange, log.Named("repo.sheets")), noop, nil
	default:
		return nil, noop, fmt.Errorf("unsupported catalog backend %q", cfg.Catalog.Backend)
	}
}

// newCompleter returns nil when no API key is configured.
func newCompleter(cfg config.AIConfig) advisorsvc.Completer {
	if !cfg.Enabled() {
		return nil
	}
	if cfg.Provider == config.ProviderAnthropic {
		return anthropic.NewClient(anthropic.Config{BaseURL: cfg.BaseURL, APIKey: cfg.APIKey, Model: cfg.Model})
	}
	return openai.NewClient(openai.Config{BaseURL: cfg.BaseURL, APIKey: cfg.APIKey, Model: cfg.Model})
}
