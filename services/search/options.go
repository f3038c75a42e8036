package search

import "pawfect/models"

// DefaultOptions returns the dropdown vocabulary used by the search page.
// Searches are not validated against it.
func DefaultOptions() models.SearchOptions {
	return models.SearchOptions{
		PetTypes: []string{
			"Dogs", "Cats", "Rabbits", "Hamsters", "Guinea Pigs",
			"Chinchillas", "Ferrets", "Birds", "Turtles", "Iguanas",
		},
		Locations: []string{
			"Central (District 1-2)",
			"West (District 5-8, 22-23)",
			"East (District 14-18)",
			"North (District 19-21, 26-28)",
			"South (District 3-4, 9-10)",
			"North-East (District 11-13, 24-25)",
		},
		Services: []string{"Grooming", "Sitter", "Pet Hotel"},
	}
}
