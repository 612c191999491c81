package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/olupoagric/storefront/internal/purchase"
	catalogsvc "github.com/olupoagric/storefront/internal/service/catalog"
)

// CatalogHandler serves the product listing, the purchase dialog and the
// store-backed calendar entries.
type CatalogHandler struct {
	catalog  CatalogService
	composer *purchase.Composer
	logger   *zap.Logger
}

// NewCatalogHandler constructs the HTTP handler adapter.
func NewCatalogHandler(catalog CatalogService, composer *purchase.Composer, logger *zap.Logger) *CatalogHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogHandler{catalog: catalog, composer: composer, logger: logger}
}

type listingResponse struct {
	SearchTerm       string        `json:"search_term"`
	SelectedCategory string        `json:"selected_category"`
	Categories       []string      `json:"categories"`
	Products         []productView `json:"products"`
}

// ListProducts filters the in-stock products by ?q= and ?category=.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	listing, err := h.catalog.Browse(c.Request.Context(), c.Query("q"), c.Query("category"))
	if err != nil {
		h.logger.Error("failed loading products", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": productsUnavailableMessage})
		return
	}

	c.JSON(http.StatusOK, listingResponse{
		SearchTerm:       listing.SearchTerm,
		SelectedCategory: listing.SelectedCategory,
		Categories:       listing.Categories,
		Products:         newProductViews(listing.Products),
	})
}

type purchaseResponse struct {
	Product  productView       `json:"product"`
	Checkout purchase.Checkout `json:"checkout"`
}

// Purchase composes the purchase dialog for ?quantity= units of a product.
func (h *CatalogHandler) Purchase(c *gin.Context) {
	product, err := h.catalog.Product(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, catalogsvc.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	case err != nil:
		h.logger.Error("failed loading product", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": productsUnavailableMessage})
		return
	}

	showPayment, _ := strconv.ParseBool(c.Query("payment_info"))
	intent := purchase.NewIntent(product, c.Query("quantity"))

	c.JSON(http.StatusOK, purchaseResponse{
		Product:  productView{Product: product, PriceLabel: product.PriceLabel()},
		Checkout: h.composer.Checkout(intent, showPayment),
	})
}

// CalendarEntries returns the store entries for ?month= grouped by crop.
func (h *CatalogHandler) CalendarEntries(c *gin.Context) {
	month, ok := parseMonth(c.Query("month"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidMonthMessage})
		return
	}

	groups, err := h.catalog.Calendar(c.Request.Context(), month)
	if err != nil {
		h.logger.Error("failed loading calendar entries", zap.Int("month", month), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": entriesUnavailableMessage})
		return
	}

	c.JSON(http.StatusOK, gin.H{"month": month, "groups": groups})
}
