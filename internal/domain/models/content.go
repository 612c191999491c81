package models

// Service describes one line of business shown on the services page.
type Service struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// FeaturedLine is a highlighted product family.
type FeaturedLine struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
