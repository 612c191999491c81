// Package catalog holds the pure projections the product listing and the
// farming calendar are built from. Nothing here performs I/O.
package catalog

import (
	"strings"

	"github.com/olupoagric/storefront/internal/domain/models"
)

// All is the category sentinel that disables category filtering.
const All = "All"

// Filter returns the products matching both the search term and the selected
// category, in their original order. The search term matches
// case-insensitively against name or description; an empty term matches
// everything. A category absent from products yields an empty result.
func Filter(products []models.Product, searchTerm, category string) []models.Product {
	needle := strings.ToLower(searchTerm)

	visible := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !matchesSearch(p, needle) {
			continue
		}
		if category != All && p.Category != category {
			continue
		}
		visible = append(visible, p)
	}
	return visible
}

func matchesSearch(p models.Product, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}

// Categories derives the selectable category options from the loaded
// products: All first, then every distinct category in first-seen order.
func Categories(products []models.Product) []string {
	seen := make(map[string]struct{}, len(products))
	categories := []string{All}
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}

// GroupByCrop keeps the entries scheduled for month and groups them by crop
// name. Groups appear in first-seen order and entries keep store order.
func GroupByCrop(entries []models.CalendarEntry, month int) []models.CropGroup {
	index := make(map[string]int)
	groups := make([]models.CropGroup, 0)
	for _, e := range entries {
		if e.Month != month {
			continue
		}
		i, ok := index[e.CropName]
		if !ok {
			i = len(groups)
			index[e.CropName] = i
			groups = append(groups, models.CropGroup{Crop: e.CropName})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}
