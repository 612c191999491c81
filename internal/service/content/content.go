// Package content holds the static copy of the informational pages.
package content

import "github.com/olupoagric/storefront/internal/domain/models"

var services = []models.Service{
	{
		Title:       "Agricultural Services",
		Description: "We offer a full range of agricultural services, from produce processing to distribution and farm management.",
		Features:    []string{"Produce Processing", "Farm Management", "Distribution Services", "Mechanized Farming"},
	},
	{
		Title:       "Fish Farming",
		Description: "Specializing in fish farming and aquaculture, we ensure sustainable practices for healthy and profitable yields.",
		Features:    []string{"Catfish Farming", "Fish Mills", "Aquaculture Consultation", "Sustainable Practices"},
	},
	{
		Title:       "Livestock Distribution",
		Description: "We breed, raise, and distribute livestock, ensuring the highest standards for cattle, poultry, and more.",
		Features:    []string{"Cattle Breeding", "Poultry Farming", "Sheep & Goats", "Animal Husbandry"},
	},
	{
		Title:       "Fruit Juice Production",
		Description: "Our natural juices, made from the finest fruits, are packaged and distributed for healthy consumption.",
		Features:    []string{"Orange Juice", "Mango Juice", "Cashew Juice", "Mixed Fruit Blends"},
	},
	{
		Title:       "Home Delivery",
		Description: "Enjoy the convenience of having fresh farm products delivered straight to your doorstep. We offer reliable and timely delivery.",
		Features:    []string{"Same-Day Delivery", "Fresh Products", "Nationwide Coverage", "Order Tracking"},
	},
	{
		Title:       "Feed Milling",
		Description: "Providing high-quality feed for poultry, fish, and livestock to ensure optimal growth.",
		Features:    []string{"Poultry Feed", "Fish Feed", "Livestock Feed", "Custom Formulations"},
	},
}

var featured = []models.FeaturedLine{
	{Title: "Poultry Products", Description: "We supply eggs, chicken, and turkey, ensuring quality from farm to table."},
	{Title: "Cocoa & Cashew", Description: "We process and distribute premium cocoa and cashew nuts, sourced from sustainable farms."},
	{Title: "Livestock Feed Milling", Description: "Providing high-quality feed for poultry, fish, and livestock to ensure optimal growth."},
	{Title: "Aquaculture Feed", Description: "Specializing in aquaculture feed, we cater to the nutritional needs of fish farming."},
}

// Page is the services page payload.
type Page struct {
	Services []models.Service      `json:"services"`
	Featured []models.FeaturedLine `json:"featured"`
}

// Services returns a copy of the services page content.
func Services() Page {
	out := Page{
		Services: make([]models.Service, len(services)),
		Featured: make([]models.FeaturedLine, len(featured)),
	}
	for i, s := range services {
		s.Features = append([]string(nil), s.Features...)
		out.Services[i] = s
	}
	copy(out.Featured, featured)
	return out
}
