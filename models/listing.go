package models

// Listing is one pet-service provider shown in search results.
type Listing struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`    // display text, e.g. "From $25/day"
	Service     string `json:"service"`  // e.g. "Grooming", "Sitter", "Pet Hotel"
	Location    string `json:"location"` // district-range label
}

// SearchQuery holds the filter values submitted by a client. Missing fields
// are empty strings.
type SearchQuery struct {
	PetType    string `json:"petType"`
	Location   string `json:"location"`
	PetService string `json:"petService"`
	DateRange  string `json:"dateRange"`
}

// SearchResponse is the body returned by the search endpoint.
type SearchResponse struct {
	Filters SearchQuery `json:"filters"`
	Count   int         `json:"count"`
	Results []Listing   `json:"results"`
}

// SearchOptions lists the values the page offers in its dropdowns.
type SearchOptions struct {
	PetTypes  []string `json:"petTypes"`
	Locations []string `json:"locations"`
	Services  []string `json:"services"`
}
