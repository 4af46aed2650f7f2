package domain

import "strings"

// FilterByName keeps the restaurants whose name contains term, ignoring case, in their
// original order. An empty term keeps every item.
func FilterByName(items []Restaurant, term string) []Restaurant {
	if term == "" {
		return cloneRestaurants(items)
	}
	needle := strings.ToLower(term)
	filtered := make([]Restaurant, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
