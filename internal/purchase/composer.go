// Package purchase turns a product and a quantity into a total and the two
// chat messages used to hand the sale over to WhatsApp. It never sends
// anything itself; the only outbound artifact is a deep link.
package purchase

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultMessagingHost is the WhatsApp click-to-chat host.
const DefaultMessagingHost = "wa.me"

// Destination is the fixed chat recipient of every deep link.
type Destination struct {
	Host        string
	PhoneNumber string
}

// BankDetails is the constant transfer reference shown on demand.
type BankDetails struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
}

// PaymentPanel is what the payment info toggle reveals.
type PaymentPanel struct {
	BankDetails
	AmountToTransfer string `json:"amount_to_transfer"`
}

// Checkout bundles everything the purchase dialog renders for an intent.
type Checkout struct {
	Quantity            int           `json:"quantity"`
	Total               string        `json:"total"`
	TotalLabel          string        `json:"total_label"`
	InquiryMessage      string        `json:"inquiry_message"`
	InquiryURL          string        `json:"inquiry_url"`
	ConfirmationMessage string        `json:"confirmation_message"`
	ConfirmationURL     string        `json:"confirmation_url"`
	Payment             *PaymentPanel `json:"payment,omitempty"`
}

type messageTemplate struct {
	opening     string
	amountLabel string
	closing     string
}

var (
	inquiryTemplate = messageTemplate{
		opening:     "Hello! I'm interested in purchasing:",
		amountLabel: "Total Amount",
		closing:     "Please provide more information.",
	}
	confirmationTemplate = messageTemplate{
		opening:     "I have made a transfer for:",
		amountLabel: "Amount",
		closing:     "Please confirm receipt.",
	}
)

func (t messageTemplate) render(i Intent) string {
	return fmt.Sprintf("%s\n\nProduct: %s\nQuantity: %d\n%s: %s\n\n%s",
		t.opening, i.Product.Name, i.Quantity, t.amountLabel, i.TotalLabel(), t.closing)
}

// Composer renders purchase messages for a fixed destination.
type Composer struct {
	host  string
	phone string
	bank  BankDetails
}

// NewComposer builds a composer. An empty host falls back to wa.me; the phone
// number is reduced to its digits.
func NewComposer(dest Destination, bank BankDetails) *Composer {
	host := strings.Trim(strings.TrimSpace(dest.Host), "/")
	if host == "" {
		host = DefaultMessagingHost
	}
	return &Composer{host: host, phone: digitsOnly(dest.PhoneNumber), bank: bank}
}

// InquiryMessage asks for more information about the intent.
func (c *Composer) InquiryMessage(i Intent) string {
	return inquiryTemplate.render(i)
}

// ConfirmationMessage announces a completed bank transfer for the intent.
func (c *Composer) ConfirmationMessage(i Intent) string {
	return confirmationTemplate.render(i)
}

// InquiryLink is the deep link carrying the inquiry message.
func (c *Composer) InquiryLink(i Intent) string {
	return c.Link(c.InquiryMessage(i))
}

// ConfirmationLink is the deep link carrying the confirmation message.
func (c *Composer) ConfirmationLink(i Intent) string {
	return c.Link(c.ConfirmationMessage(i))
}

// Link builds https://<host>/<number>?text=<encoded message>.
func (c *Composer) Link(message string) string {
	return "https://" + c.host + "/" + c.phone + "?text=" + EncodeText(message)
}

// PaymentPanel returns the bank details for the intent, or nil while the
// panel is hidden.
func (c *Composer) PaymentPanel(i Intent, visible bool) *PaymentPanel {
	if !visible {
		return nil
	}
	return &PaymentPanel{BankDetails: c.bank, AmountToTransfer: i.TotalLabel()}
}

// Checkout composes the full dialog payload for an intent.
func (c *Composer) Checkout(i Intent, showPaymentInfo bool) Checkout {
	return Checkout{
		Quantity:            i.Quantity,
		Total:               i.Total().String(),
		TotalLabel:          i.TotalLabel(),
		InquiryMessage:      c.InquiryMessage(i),
		InquiryURL:          c.InquiryLink(i),
		ConfirmationMessage: c.ConfirmationMessage(i),
		ConfirmationURL:     c.ConfirmationLink(i),
		Payment:             c.PaymentPanel(i, showPaymentInfo),
	}
}

// EncodeText percent-encodes every byte outside the RFC 3986 unreserved set,
// spaces included, so the text survives as a single query value.
func EncodeText(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
