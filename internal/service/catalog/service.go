// Package catalog serves the read-only product snapshot and the farming
// calendar entries loaded from the configured store.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/olupoagric/storefront/internal/catalog"
	"github.com/olupoagric/storefront/internal/domain/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidMonth    = errors.New("month must be between 1 and 12")
)

// Source is a read-only product and calendar store.
type Source interface {
	ListInStockProducts(ctx context.Context) ([]models.Product, error)
	ListCalendarEntries(ctx context.Context) ([]models.CalendarEntry, error)
}

// Listing is one filtered view of the catalog.
type Listing struct {
	SearchTerm       string           `json:"search_term"`
	SelectedCategory string           `json:"selected_category"`
	Categories       []string         `json:"categories"`
	Products         []models.Product `json:"products"`
}

// Service reads the store and projects the result.
type Service struct {
	source Source
	logger *zap.Logger
}

// NewService builds a catalog service over source.
func NewService(source Source, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{source: source, logger: logger}
}

// Snapshot loads the in-stock products. Records that fail validation are
// logged and skipped.
func (s *Service) Snapshot(ctx context.Context) ([]models.Product, error) {
	products, err := s.source.ListInStockProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	valid := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !p.InStock {
			continue
		}
		if err := p.Validate(); err != nil {
			s.logger.Warn("skipping product", zap.String("id", p.ID), zap.Error(err))
			continue
		}
		valid = append(valid, p)
	}
	return valid, nil
}

// Browse filters a fresh snapshot. An empty category means All.
func (s *Service) Browse(ctx context.Context, searchTerm, category string) (Listing, error) {
	products, err := s.Snapshot(ctx)
	if err != nil {
		return Listing{}, err
	}
	if strings.TrimSpace(category) == "" {
		category = catalog.All
	}
	return Listing{
		SearchTerm:       searchTerm,
		SelectedCategory: category,
		Categories:       catalog.Categories(products),
		Products:         catalog.Filter(products, searchTerm, category),
	}, nil
}

// Product returns one in-stock product by id.
func (s *Service) Product(ctx context.Context, id string) (models.Product, error) {
	products, err := s.Snapshot(ctx)
	if err != nil {
		return models.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
}

// Calendar returns the store entries for month grouped by crop.
func (s *Service) Calendar(ctx context.Context, month int) ([]models.CropGroup, error) {
	if !models.ValidMonth(month) {
		return nil, ErrInvalidMonth
	}
	entries, err := s.source.ListCalendarEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list calendar entries: %w", err)
	}

	valid := make([]models.CalendarEntry, 0, len(entries))
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			s.logger.Warn("skipping calendar entry", zap.String("id", e.ID), zap.Error(err))
			continue
		}
		valid = append(valid, e)
	}
	return catalog.GroupByCrop(valid, month), nil
}
