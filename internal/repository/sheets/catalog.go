package sheets

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/olupoagric/storefront/internal/domain/models"
)

// Column order of the Products range: id, name, category, description,
// price, unit, image_url, in_stock, created_at.
const (
	colID = iota
	colName
	colCategory
	colDescription
	colPrice
	colUnit
	colImageURL
	colInStock
	colCreatedAt
)

// Column order of the Calendar range: id, crop_name, activity, month, season,
// description.
const (
	calID = iota
	calCrop
	calActivity
	calMonth
	calSeason
	calDescription
)

// Catalog reads products and calendar entries from two spreadsheet ranges.
type Catalog struct {
	reader        RangeReader
	productsRange string
	calendarRange string
	logger        *zap.Logger
}

// NewCatalog builds a catalog source over reader.
func NewCatalog(reader RangeReader, productsRange, calendarRange string, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{
		reader:        reader,
		productsRange: productsRange,
		calendarRange: calendarRange,
		logger:        logger,
	}
}

// ListInStockProducts returns the in-stock products ordered by category.
func (c *Catalog) ListInStockProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := c.reader.ReadRange(ctx, c.productsRange)
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(rows))
	for i, row := range rows {
		p, err := parseProductRow(row)
		if err != nil {
			c.logger.Debug("skipping product row", zap.Int("row", i+2), zap.Error(err))
			continue
		}
		if p.InStock {
			products = append(products, p)
		}
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Category < products[j].Category
	})
	return products, nil
}

// ListCalendarEntries returns every calendar entry ordered by month then crop.
func (c *Catalog) ListCalendarEntries(ctx context.Context) ([]models.CalendarEntry, error) {
	rows, err := c.reader.ReadRange(ctx, c.calendarRange)
	if err != nil {
		return nil, err
	}

	entries := make([]models.CalendarEntry, 0, len(rows))
	for i, row := range rows {
		e, err := parseCalendarRow(row)
		if err != nil {
			c.logger.Debug("skipping calendar row", zap.Int("row", i+2), zap.Error(err))
			continue
		}
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Month != entries[j].Month {
			return entries[i].Month < entries[j].Month
		}
		return entries[i].CropName < entries[j].CropName
	})
	return entries, nil
}

func parseProductRow(row []interface{}) (models.Product, error) {
	if cell(row, colID) == "" {
		return models.Product{}, fmt.Errorf("missing id")
	}

	price, err := parsePrice(cell(row, colPrice))
	if err != nil {
		return models.Product{}, err
	}

	p := models.Product{
		ID:          cell(row, colID),
		Name:        cell(row, colName),
		Category:    cell(row, colCategory),
		Description: cell(row, colDescription),
		Price:       price,
		Unit:        cell(row, colUnit),
		ImageURL:    cell(row, colImageURL),
		InStock:     parseBool(cell(row, colInStock)),
	}

	if raw := cell(row, colCreatedAt); raw != "" {
		created, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return models.Product{}, fmt.Errorf("parse created_at %q: %w", raw, err)
		}
		p.CreatedAt = created
	}
	return p, nil
}

func parseCalendarRow(row []interface{}) (models.CalendarEntry, error) {
	if cell(row, calID) == "" {
		return models.CalendarEntry{}, fmt.Errorf("missing id")
	}

	month, err := strconv.Atoi(cell(row, calMonth))
	if err != nil {
		return models.CalendarEntry{}, fmt.Errorf("parse month %q: %w", cell(row, calMonth), err)
	}

	return models.CalendarEntry{
		ID:          cell(row, calID),
		CropName:    cell(row, calCrop),
		Activity:    cell(row, calActivity),
		Month:       month,
		Season:      cell(row, calSeason),
		Description: cell(row, calDescription),
	}, nil
}

// cell returns the trimmed text of column i, or "" past the end of a short row.
func cell(row []interface{}, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[i]))
}

// parsePrice accepts plain numbers as well as "₦1,500" style cells. Blank is zero.
func parsePrice(raw string) (decimal.Decimal, error) {
	raw = strings.TrimPrefix(raw, models.NairaSign)
	raw = strings.ReplaceAll(raw, ",", "")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse price %q: %w", raw, err)
	}
	return price, nil
}

func parseBool(raw string) bool {
	switch strings.ToLower(raw) {
	case "true", "yes", "y", "1":
		return true
	default:
		return false
	}
}
