package view

import (
	"github.com/olupoagric/storefront/internal/domain/models"
	"github.com/olupoagric/storefront/internal/purchase"
)

// Reduce returns the state that results from applying a to s. s itself is
// never modified; unknown actions and actions that do not apply return s.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case ProductsLoaded:
		s.Catalog.Products = a.Products
		s.Catalog = s.Catalog.project()
	case SearchChanged:
		s.Catalog.SearchTerm = a.Term
		s.Catalog = s.Catalog.project()
	case CategorySelected:
		s.Catalog.SelectedCategory = a.Category
		s.Catalog = s.Catalog.project()
	case PurchaseOpened:
		p, ok := s.Catalog.find(a.ProductID)
		if !ok {
			return s
		}
		s.Catalog.Purchase = &PurchaseState{
			Intent:        purchase.NewIntent(p, "1"),
			QuantityInput: "1",
		}
	case QuantityEdited:
		if s.Catalog.Purchase == nil {
			return s
		}
		next := *s.Catalog.Purchase
		next.QuantityInput = a.Input
		next.Intent = next.Intent.WithQuantity(a.Input)
		s.Catalog.Purchase = &next
	case PaymentInfoToggled:
		if s.Catalog.Purchase == nil {
			return s
		}
		next := *s.Catalog.Purchase
		next.ShowPaymentInfo = !next.ShowPaymentInfo
		s.Catalog.Purchase = &next
	case PurchaseClosed:
		s.Catalog.Purchase = nil
	case MonthSelected:
		if !models.ValidMonth(a.Month) {
			return s
		}
		s.Calendar.Month = a.Month
		s.Calendar.Calendar = s.Calendar.Calendar.Begin()
	case CalendarResolved:
		if a.Err != "" {
			s.Calendar.Calendar, _ = s.Calendar.Calendar.Fail(a.Seq, "", a.Err)
		} else {
			s.Calendar.Calendar, _ = s.Calendar.Calendar.Succeed(a.Seq, a.Text)
		}
	case AdviceRequested:
		s.Calendar.Question = a.Question
		s.Calendar.Advice = s.Calendar.Advice.Begin()
	case AdviceResolved:
		if a.Err != "" {
			s.Calendar.Advice, _ = s.Calendar.Advice.Fail(a.Seq, "", a.Err)
		} else {
			s.Calendar.Advice, _ = s.Calendar.Advice.Succeed(a.Seq, a.Text)
		}
	case WeatherRequested:
		s.Calendar.Weather = s.Calendar.Weather.Begin()
	case WeatherResolved:
		if a.Err != "" {
			s.Calendar.Weather, _ = s.Calendar.Weather.Fail(a.Seq, a.Weather, a.Err)
		} else {
			s.Calendar.Weather, _ = s.Calendar.Weather.Succeed(a.Seq, a.Weather)
		}
	}
	return s
}
