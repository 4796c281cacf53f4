package alerting

import (
	"strings"

	"github.com/Daskott/coastal-alert/server/models"
)

const (
	LOCATION_SEPARATOR   = "|"
	ALL_REGIONS          = "All Regions"
	DEFAULT_REGION_LABEL = "Coastal Region"
)

// ParseLocation splits a location filter like "Chennai | Kochi" into its trimmed,
// non-empty pieces. An empty result means no filter.
func ParseLocation(location string) []string {
	filters := []string{}
	for _, piece := range strings.Split(location, LOCATION_SEPARATOR) {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			filters = append(filters, piece)
		}
	}

	return filters
}

// DisplayLocation joins filters for display, or returns fallback when there are none.
func DisplayLocation(filters []string, fallback string) string {
	if len(filters) == 0 {
		return fallback
	}

	return strings.Join(filters, ", ")
}

// MatchesRegion reports whether region contains any of filters, ignoring case.
// Every region matches an empty filter list.
func MatchesRegion(region string, filters []string) bool {
	if len(filters) == 0 {
		return true
	}

	region = strings.ToLower(region)
	for _, filter := range filters {
		if strings.Contains(region, strings.ToLower(filter)) {
			return true
		}
	}

	return false
}

// SelectContacts returns the contacts whose region matches filters, keeping their order.
func SelectContacts(contacts []models.Contact, filters []string) []models.Contact {
	selected := []models.Contact{}
	for _, contact := range contacts {
		if MatchesRegion(contact.RegionName(), filters) {
			selected = append(selected, contact)
		}
	}

	return selected
}
