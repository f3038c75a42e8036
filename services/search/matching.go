package search

import "pawfect/models"

// Matches reports whether listing l satisfies every non-empty filter in q.
// Location and service use exact, case-sensitive comparison. PetType is
// accepted but listings carry no species data, so it never narrows results.
// DateRange is ignored.
func Matches(q models.SearchQuery, l models.Listing) bool {
	if q.Location != "" && l.Location != q.Location {
		return false
	}
	if q.PetService != "" && l.Service != q.PetService {
		return false
	}
	return true
}
