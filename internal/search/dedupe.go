package search

import (
	"github.com/borourke9/leadscraper/internal/models"
)

// Deduplicate returns the businesses with at most one entry per exact
// (name, address) pair, preserving first-seen order. Repeats are expected:
// multiple type calls under the same or different categories can return
// the same establishment.
func Deduplicate(businesses []models.Business) []models.Business {
	seen := make(map[string]struct{}, len(businesses))
	unique := make([]models.Business, 0, len(businesses))

	for _, b := range businesses {
		key := b.Name + "|" + b.Address
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, b)
	}

	return unique
}
