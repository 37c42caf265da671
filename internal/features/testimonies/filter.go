package testimonies

import (
	"sort"
	"strings"
)

// NormalizeCountry lowercases and trims a country name so that stored
// values like " france " match a "France" filter. Matching is exact after
// normalization, not substring.
func NormalizeCountry(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func filterByCountry(list []Testimony, country string) []Testimony {
	want := NormalizeCountry(country)

	filtered := make([]Testimony, 0, len(list))
	for _, t := range list {
		if NormalizeCountry(t.CountryVisited) == want {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

func sortByCreatedAtDesc(list []Testimony) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.Time().After(list[j].CreatedAt.Time())
	})
}
