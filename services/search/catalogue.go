package search

import (
	"fmt"

	"pawfect/models"
)

// Catalogue is the fixed set of listings searched by the API. It is built once
// at startup and never mutated, so it is safe to share across requests.
type Catalogue struct {
	listings []models.Listing
}

// NewCatalogue copies the given listings into a Catalogue. IDs must be unique.
func NewCatalogue(listings []models.Listing) (*Catalogue, error) {
	seen := make(map[int]struct{}, len(listings))
	for _, l := range listings {
		if _, dup := seen[l.ID]; dup {
			return nil, fmt.Errorf("catalogue: duplicate listing id %d", l.ID)
		}
		seen[l.ID] = struct{}{}
	}
	copied := make([]models.Listing, len(listings))
	copy(copied, listings)
	return &Catalogue{listings: copied}, nil
}

// Len returns the number of listings.
func (c *Catalogue) Len() int {
	return len(c.listings)
}

// Each calls fn for every listing in dataset order.
func (c *Catalogue) Each(fn func(models.Listing)) {
	for _, l := range c.listings {
		fn(l)
	}
}

// DefaultListings returns the built-in demo dataset.
func DefaultListings() []models.Listing {
	return []models.Listing{
		{
			ID:          1,
			Title:       "Pawfect Groomers - Central",
			Description: "Award-winning groomers with gentle handling.",
			Price:       "From $35",
			Service:     "Grooming",
			Location:    "Central (District 1-2)",
		},
		{
			ID:          2,
			Title:       "Happy Paws Sitters",
			Description: "Experienced sitters for all small animals.",
			Price:       "From $25/day",
			Service:     "Sitter",
			Location:    "East (District 14-18)",
		},
		{
			ID:          3,
			Title:       "Lux Pet Hotel",
			Description: "Round-the-clock care and cuddles.",
			Price:       "From $40/night",
			Service:     "Pet Hotel",
			Location:    "West (District 5-8, 22-23)",
		},
	}
}
