package purchase

import (
	"github.com/shopspring/decimal"

	"github.com/olupoagric/storefront/internal/domain/models"
)

// Intent is the ephemeral purchase being composed for one product. It is never
// persisted; the transaction record lives in the chat and bank rails.
type Intent struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// NewIntent starts an intent from raw quantity input.
func NewIntent(product models.Product, quantityText string) Intent {
	return Intent{Product: product, Quantity: ParseQuantity(quantityText)}
}

// WithQuantity returns a copy of the intent with the quantity re-parsed.
func (i Intent) WithQuantity(quantityText string) Intent {
	i.Quantity = ParseQuantity(quantityText)
	return i
}

// Total is price times quantity. A quantity below the minimum never reaches
// the multiplication.
func (i Intent) Total() decimal.Decimal {
	qty := i.Quantity
	if qty < MinQuantity {
		qty = MinQuantity
	}
	return i.Product.Price.Mul(decimal.NewFromInt(int64(qty)))
}

// TotalLabel renders Total in Naira.
func (i Intent) TotalLabel() string {
	return models.FormatNaira(i.Total())
}
