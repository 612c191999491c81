package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/olupoagric/storefront/internal/domain/models"
	"github.com/olupoagric/storefront/internal/service/advisor"
	catalogsvc "github.com/olupoagric/storefront/internal/service/catalog"
	"github.com/olupoagric/storefront/internal/service/weather"
	"github.com/olupoagric/storefront/internal/view"
)

// User-visible messages for store failures.
const (
	productsUnavailableMessage = "Unable to load products right now. Please try again."
	entriesUnavailableMessage  = "Unable to load the farming calendar entries right now. Please try again."
	invalidMonthMessage        = "month must be between 1 and 12"
)

// CatalogService is the read side of the product and calendar store.
type CatalogService interface {
	Snapshot(ctx context.Context) ([]models.Product, error)
	Browse(ctx context.Context, searchTerm, category string) (catalogsvc.Listing, error)
	Product(ctx context.Context, id string) (models.Product, error)
	Calendar(ctx context.Context, month int) ([]models.CropGroup, error)
}

// AdvisorService answers questions and drafts monthly calendars.
type AdvisorService interface {
	Ask(ctx context.Context, question string) (advisor.Answer, error)
	MonthlyCalendar(ctx context.Context, month int) (advisor.Answer, error)
}

// WeatherService reports current conditions.
type WeatherService interface {
	Current(ctx context.Context) weather.Report
}

// productView adds the rendered price to a product.
type productView struct {
	models.Product
	PriceLabel string `json:"price_label"`
}

func newProductViews(products []models.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, productView{Product: p, PriceLabel: p.PriceLabel()})
	}
	return views
}

// advisorMessage extracts the text to show for a failed advisor call.
func advisorMessage(err error, fallback string) string {
	var unavailable *advisor.UnavailableError
	if errors.As(err, &unavailable) {
		return unavailable.Message
	}
	return fallback
}

func parseMonth(raw string) (int, bool) {
	month, err := strconv.Atoi(raw)
	if err != nil || !models.ValidMonth(month) {
		return 0, false
	}
	return month, true
}

// SessionStore holds per-visitor view state.
type SessionStore interface {
	Get(visitorID string) view.State
	Dispatch(visitorID string, action view.Action) view.State
}
