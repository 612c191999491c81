package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidProduct marks a product record that breaks the catalog data contract.
var ErrInvalidProduct = errors.New("invalid product")

// Product is a read-only catalog item as published by the external store.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	ImageURL    string          `json:"image_url,omitempty"`
	InStock     bool            `json:"in_stock"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Validate checks the invariants every product must satisfy before it is shown.
func (p Product) Validate() error {
	switch {
	case strings.TrimSpace(p.ID) == "":
		return fmt.Errorf("%w: id must not be empty", ErrInvalidProduct)
	case strings.TrimSpace(p.Name) == "":
		return fmt.Errorf("%w: name must not be empty (id=%s)", ErrInvalidProduct, p.ID)
	case p.Price.IsNegative():
		return fmt.Errorf("%w: price must not be negative (id=%s)", ErrInvalidProduct, p.ID)
	}
	return nil
}

// PriceOnRequest reports whether the zero price sentinel is set.
func (p Product) PriceOnRequest() bool {
	return p.Price.IsZero()
}

// PriceLabel renders the price as displayed in the catalog. When the price is
// zero the unit is the whole label.
func (p Product) PriceLabel() string {
	if p.PriceOnRequest() {
		return p.Unit
	}
	label := FormatNaira(p.Price)
	if p.Unit != "" {
		label += " " + p.Unit
	}
	return label
}
