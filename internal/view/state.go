// Package view models the per-visitor page state as immutable values updated
// only through Reduce.
package view

import (
	"github.com/olupoagric/storefront/internal/catalog"
	"github.com/olupoagric/storefront/internal/domain/models"
	"github.com/olupoagric/storefront/internal/purchase"
)

// State is everything a visitor's pages render from.
type State struct {
	Catalog  CatalogState  `json:"catalog"`
	Calendar CalendarState `json:"calendar"`
}

// CatalogState is the product listing. Categories and Visible are
// projections of Products and are recomputed whenever their inputs change.
type CatalogState struct {
	Products         []models.Product `json:"-"`
	Categories       []string         `json:"categories"`
	SearchTerm       string           `json:"search_term"`
	SelectedCategory string           `json:"selected_category"`
	Visible          []models.Product `json:"visible"`
	Purchase         *PurchaseState   `json:"purchase,omitempty"`
}

// PurchaseState exists only while a purchase dialog is open.
type PurchaseState struct {
	Intent          purchase.Intent `json:"intent"`
	QuantityInput   string          `json:"quantity_input"`
	ShowPaymentInfo bool            `json:"show_payment_info"`
}

// CalendarState is the farming calendar page.
type CalendarState struct {
	Month    int                     `json:"month"`
	Calendar Section[string]         `json:"calendar"`
	Question string                  `json:"question"`
	Advice   Section[string]         `json:"advice"`
	Weather  Section[models.Weather] `json:"weather"`
}

// Initial returns the state of a fresh visit with month preselected.
func Initial(month int) State {
	if !models.ValidMonth(month) {
		month = 1
	}
	return State{
		Catalog: CatalogState{
			Categories:       []string{catalog.All},
			SelectedCategory: catalog.All,
			Visible:          []models.Product{},
		},
		Calendar: CalendarState{
			Month:    month,
			Calendar: Section[string]{Status: StatusIdle},
			Advice:   Section[string]{Status: StatusIdle},
			Weather:  Section[models.Weather]{Status: StatusIdle},
		},
	}
}

func (c CatalogState) project() CatalogState {
	c.Categories = catalog.Categories(c.Products)
	c.Visible = catalog.Filter(c.Products, c.SearchTerm, c.SelectedCategory)
	return c
}

func (c CatalogState) find(id string) (models.Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
