package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/olupoagric/storefront/internal/purchase"
	"github.com/olupoagric/storefront/internal/view"
)

// Catalog and purchase action types accepted by Dispatch.
const (
	ActionReload            = "reload"
	ActionSearch            = "search"
	ActionSelectCategory    = "select_category"
	ActionOpenPurchase      = "open_purchase"
	ActionEditQuantity      = "edit_quantity"
	ActionTogglePaymentInfo = "toggle_payment_info"
	ActionClosePurchase     = "close_purchase"
)

// SessionHandler exposes the visitor's view state and applies catalog and
// purchase actions to it.
type SessionHandler struct {
	sessions SessionStore
	catalog  CatalogService
	composer *purchase.Composer
	logger   *zap.Logger
}

// NewSessionHandler constructs the HTTP handler adapter.
func NewSessionHandler(sessions SessionStore, catalog CatalogService, composer *purchase.Composer, logger *zap.Logger) *SessionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionHandler{sessions: sessions, catalog: catalog, composer: composer, logger: logger}
}

type actionRequest struct {
	Type      string `json:"type" binding:"required"`
	Term      string `json:"term"`
	Category  string `json:"category"`
	ProductID string `json:"product_id"`
	Quantity  string `json:"quantity"`
}

type sessionResponse struct {
	State    view.State         `json:"state"`
	Checkout *purchase.Checkout `json:"checkout,omitempty"`
}

// Get returns the visitor's current view state.
func (h *SessionHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.respond(h.sessions.Get(visitorID(c))))
}

// Dispatch applies one action. The product snapshot is loaded on the first
// action of a session and again on reload.
func (h *SessionHandler) Dispatch(c *gin.Context) {
	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	action, ok := toAction(req)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown action " + req.Type})
		return
	}

	id := visitorID(c)
	if req.Type == ActionReload || h.sessions.Get(id).Catalog.Products == nil {
		products, err := h.catalog.Snapshot(c.Request.Context())
		if err != nil {
			h.logger.Error("failed loading products", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": productsUnavailableMessage})
			return
		}
		h.sessions.Dispatch(id, view.ProductsLoaded{Products: products})
	}

	state := h.sessions.Get(id)
	if action != nil {
		state = h.sessions.Dispatch(id, action)
	}
	c.JSON(http.StatusOK, h.respond(state))
}

func (h *SessionHandler) respond(state view.State) sessionResponse {
	resp := sessionResponse{State: state}
	if p := state.Catalog.Purchase; p != nil {
		checkout := h.composer.Checkout(p.Intent, p.ShowPaymentInfo)
		resp.Checkout = &checkout
	}
	return resp
}

// toAction maps a request onto a view action. Reload maps to nil.
func toAction(req actionRequest) (view.Action, bool) {
	switch req.Type {
	case ActionReload:
		return nil, true
	case ActionSearch:
		return view.SearchChanged{Term: req.Term}, true
	case ActionSelectCategory:
		return view.CategorySelected{Category: req.Category}, true
	case ActionOpenPurchase:
		return view.PurchaseOpened{ProductID: req.ProductID}, true
	case ActionEditQuantity:
		return view.QuantityEdited{Input: req.Quantity}, true
	case ActionTogglePaymentInfo:
		return view.PaymentInfoToggled{}, true
	case ActionClosePurchase:
		return view.PurchaseClosed{}, true
	default:
		return nil, false
	}
}
