// Package booking resolves the airline "manage booking" page for a recorded
// ticket so the dashboard can link a PNR straight to the carrier.
package booking

import (
	"net/url"
	"strings"
)

// Airline manage-booking pages, matched against a normalized fragment of the
// flight name. Where carriers have no deep-linkable PNR lookup, the landing
// page of their manage-booking flow is used. Order matters: first match wins.
var airlinePages = []struct{ key, page string }{
	{"biman", "https://www.biman-airlines.com/"},
	{"qatar", "https://www.qatarairways.com/en/manage-booking.html"},
	{"emirates", "https://www.emirates.com/manage-booking/"},
	{"saudia", "https://www.saudia.com/managing-your-booking"},
	{"gulf", "https://www.gulfair.com/manage-my-booking"},
	{"flydubai", "https://www.flydubai.com/en/manage/manage-booking"},
	{"arabia", "https://www.airarabia.com/en/manage-booking"},
	{"etihad", "https://www.etihad.com/en/manage"},
	{"kuwait", "https://www.kuwaitairways.com/en/manage-booking"},
}

var genericWords = []string{"airlines", "airways", "air"}

// ManageURL returns the manage-booking URL for flightName, falling back to a
// Google search for unknown carriers.
func ManageURL(flightName string) string {
	normalized := strings.ToLower(flightName)
	for _, w := range genericWords {
		normalized = strings.ReplaceAll(normalized, w, "")
	}
	normalized = strings.TrimSpace(normalized)

	for _, a := range airlinePages {
		if strings.Contains(normalized, a.key) {
			return a.page
		}
	}

	q := url.QueryEscape(flightName + " manage booking")
	return "https://www.google.com/search?q=" + q
}
