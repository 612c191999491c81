// Package supabase reads the catalog from a Supabase project through its
// PostgREST interface.
package supabase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/olupoagric/storefront/internal/config"
	"github.com/olupoagric/storefront/internal/domain/models"
)

const (
	productsTable = "products"
	calendarTable = "farming_calendar"
)

// Repository is a read-only PostgREST client for the products and
// farming_calendar tables.
type Repository struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

// NewRepository builds a client for the project at cfg.URL authenticated with
// the anonymous key.
func NewRepository(cfg config.SupabaseConfig, logger *zap.Logger) *Repository {
	if logger == nil {
		logger = zap.NewNop()
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.URL, "/")+"/rest/v1").
		SetHeader("apikey", cfg.AnonKey).
		SetAuthToken(cfg.AnonKey).
		SetHeader("Accept", "application/json").
		SetTimeout(15 * time.Second)

	return &Repository{httpClient: httpClient, logger: logger}
}

// ListInStockProducts returns the in-stock products ordered by category.
func (r *Repository) ListInStockProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.get(ctx, productsTable, map[string]string{
		"select":   "*",
		"in_stock": "eq.true",
		"order":    "category.asc",
	}, &products)
	if err != nil {
		return nil, err
	}
	return products, nil
}

// ListCalendarEntries returns every calendar entry ordered by month then crop.
func (r *Repository) ListCalendarEntries(ctx context.Context) ([]models.CalendarEntry, error) {
	var entries []models.CalendarEntry
	err := r.get(ctx, calendarTable, map[string]string{
		"select": "*",
		"order":  "month.asc,crop_name.asc",
	}, &entries)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *Repository) get(ctx context.Context, table string, params map[string]string, result interface{}) error {
	apiErr := new(apiError)

	resp, err := r.httpClient.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(result).
		SetError(apiErr).
		Get("/" + table)
	if err != nil {
		return fmt.Errorf("query %s: %w", table, err)
	}
	if resp.IsError() {
		return fmt.Errorf("query %s: status=%d, code=%s, message=%s", table, resp.StatusCode(), apiErr.Code, apiErr.Message)
	}

	r.logger.Debug("supabase query", zap.String("table", table), zap.Duration("took", resp.Time()))
	return nil
}
