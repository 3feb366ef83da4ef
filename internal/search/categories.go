package search

// categoryTypes maps each user-facing trade category to the provider place
// types queried for it. The places API has no dedicated type for every
// trade, so several categories borrow adjacent types; an hvac search can
// legitimately surface plumbing businesses.
var categoryTypes = map[string][]string{
	"electrician": {"electrician"},
	"hvac":        {"electrician", "plumber"},
	"plumber":     {"plumber"},
	"roofer":      {"electrician", "painter"},
	"contractor":  {"electrician", "plumber", "painter"},
	"painter":     {"painter"},
	"landscaper":  {"painter", "electrician"},
	"auto_repair": {"car_repair"},
}

// ExpandCategory returns the provider types to query for a user category,
// in order. An unrecognized category expands to nil and is skipped by the
// orchestrator rather than treated as an error.
func ExpandCategory(category string) []string {
	return categoryTypes[category]
}
