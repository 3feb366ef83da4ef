package search

import (
	"strings"

	"github.com/borourke9/leadscraper/internal/clients"
)

// serviceKeywords are trade and generic business terms matched against the
// lower-cased name and type tags of a result. Substring match, so "electric"
// also covers "electrical" and "electrician".
var serviceKeywords = []string{
	"electric", "plumb", "roof", "hvac", "heating", "cooling",
	"contractor", "construction", "repair", "install", "paint",
	"landscap", "auto", "service", "maintenance",
}

// recognizedTypes are provider type tags accepted as a service-business
// signal on their own.
var recognizedTypes = map[string]bool{
	"electrician":       true,
	"plumber":           true,
	"painter":           true,
	"car_repair":        true,
	"establishment":     true,
	"point_of_interest": true,
}

// businessSuffixes are common tokens in registered business names.
var businessSuffixes = []string{"llc", "inc", "corp", "company", "service", "services"}

// KeepResult reports whether a raw place qualifies as a lead. A place with
// a website is never kept; otherwise any one of the keyword, type, or
// name-suffix signals is enough. The union of signals is intentionally
// permissive: missing a real lead costs more than an extra row in the list.
func KeepResult(place clients.Place) bool {
	if place.WebsiteURI != "" {
		return false
	}

	name := strings.ToLower(place.DisplayName.Text)
	haystack := name + " " + strings.ToLower(strings.Join(place.Types, " "))

	for _, keyword := range serviceKeywords {
		if strings.Contains(haystack, keyword) {
			return true
		}
	}

	for _, t := range place.Types {
		if recognizedTypes[t] {
			return true
		}
	}

	for _, suffix := range businessSuffixes {
		if strings.Contains(name, suffix) {
			return true
		}
	}

	return false
}
