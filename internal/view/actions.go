package view

import "github.com/olupoagric/storefront/internal/domain/models"

// Action is a discrete state transition request.
type Action interface {
	action()
}

type (
	ProductsLoaded struct {
		Products []models.Product
	}
	SearchChanged struct {
		Term string
	}
	CategorySelected struct {
		Category string
	}
	PurchaseOpened struct {
		ProductID string
	}
	QuantityEdited struct {
		Input string
	}
	PaymentInfoToggled struct{}
	PurchaseClosed     struct{}

	MonthSelected struct {
		Month int
	}
	CalendarResolved struct {
		Seq  uint64
		Text string
		Err  string
	}
	AdviceRequested struct {
		Question string
	}
	AdviceResolved struct {
		Seq  uint64
		Text string
		Err  string
	}
	WeatherRequested struct{}
	WeatherResolved  struct {
		Seq     uint64
		Weather models.Weather
		Err     string
	}
)

func (ProductsLoaded) action()     {}
func (SearchChanged) action()      {}
func (CategorySelected) action()   {}
func (PurchaseOpened) action()     {}
func (QuantityEdited) action()     {}
func (PaymentInfoToggled) action() {}
func (PurchaseClosed) action()     {}
func (MonthSelected) action()      {}
func (CalendarResolved) action()   {}
func (AdviceRequested) action()    {}
func (AdviceResolved) action()     {}
func (WeatherRequested) action()   {}
func (WeatherResolved) action()    {}
