package supabase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olupoagric/storefront/internal/config"
)

func TestListInStockProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/products", r.URL.Path)
		assert.Equal(t, "*", r.URL.Query().Get("select"))
		assert.Equal(t, "eq.true", r.URL.Query().Get("in_stock"))
		assert.Equal(t, "category.asc", r.URL.Query().Get("order"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"p1","name":"Maize Seed","category":"Seeds","description":"Hybrid","price":12000,"unit":"per bag","image_url":null,"in_stock":true,"created_at":"2024-03-01T10:00:00.123456+00:00"},
			{"id":"p2","name":"Sprayer","category":"Tools","description":"","price":0,"unit":"Contact for price","in_stock":true,"created_at":"2024-03-02T10:00:00+00:00"}
		]`))
	}))
	defer server.Close()

	repo := NewRepository(config.SupabaseConfig{URL: server.URL + "/", AnonKey: "anon-key"}, nil)
	products, err := repo.ListInStockProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "Maize Seed", products[0].Name)
	assert.True(t, products[0].Price.Equal(decimal.NewFromInt(12000)))
	assert.Empty(t, products[0].ImageURL)
	assert.Equal(t, 2024, products[0].CreatedAt.Year())
	assert.True(t, products[1].PriceOnRequest())
}

func TestListCalendarEntries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/farming_calendar", r.URL.Path)
		assert.Equal(t, "month.asc,crop_name.asc", r.URL.Query().Get("order"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"c1","crop_name":"Maize","activity":"Planting","month":4,"season":"Rainy","description":"Plant at onset of rains"}]`))
	}))
	defer server.Close()

	repo := NewRepository(config.SupabaseConfig{URL: server.URL, AnonKey: "anon-key"}, nil)
	entries, err := repo.ListCalendarEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Maize", entries[0].CropName)
	assert.Equal(t, 4, entries[0].Month)
}

func TestListInStockProducts_ErrorPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"PGRST301","message":"JWT expired"}`))
	}))
	defer server.Close()

	repo := NewRepository(config.SupabaseConfig{URL: server.URL, AnonKey: "stale"}, nil)
	_, err := repo.ListInStockProducts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=401")
	assert.Contains(t, err.Error(), "JWT expired")
}
