package filter

import (
	"strings"

	"github.com/handiism/festival-bands/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Apply returns the bands matching every active criterion, in their
// original order.
//
// The input slice is never modified. With no active criteria the input is
// returned as is.
//
// Example:
//
//	visible := filter.Apply(filter.Criteria{Search: "echo", Category: "Rock"}, catalog.Bands)
func Apply(c Criteria, bands []model.Band) []model.Band {
	if c.IsEmpty() {
		return bands
	}

	m := newMatcher(c)
	filtered := make([]model.Band, 0, len(bands))
	for _, band := range bands {
		if m.match(band) {
			filtered = append(filtered, band)
		}
	}
	return filtered
}

// Match reports whether a single band satisfies c.
func Match(c Criteria, band model.Band) bool {
	return newMatcher(c).match(band)
}

// matcher holds the lower-cased criteria for one Apply call.
// cases.Caser is stateful, so each matcher owns its own.
type matcher struct {
	lower    cases.Caser
	search   string
	date     string
	category string
	venue    string
}

func newMatcher(c Criteria) *matcher {
	lower := cases.Lower(language.Und)
	return &matcher{
		lower:    lower,
		search:   lower.String(c.Search),
		date:     lower.String(c.Date),
		category: c.Category,
		venue:    lower.String(c.Venue),
	}
}

func (m *matcher) match(band model.Band) bool {
	return m.matchSearch(band) &&
		m.matchDate(band) &&
		m.matchCategory(band) &&
		m.matchVenue(band)
}

// matchSearch checks name or description. An empty term is contained in
// every string.
func (m *matcher) matchSearch(band model.Band) bool {
	return strings.Contains(m.lower.String(band.Name), m.search) ||
		strings.Contains(m.lower.String(band.Description), m.search)
}

// matchDate compares against the start of the whole gig string, not the
// parsed day token.
func (m *matcher) matchDate(band model.Band) bool {
	if m.date == "" {
		return true
	}
	return m.anyGig(band, func(gig string) bool {
		return strings.HasPrefix(gig, m.date)
	})
}

func (m *matcher) matchCategory(band model.Band) bool {
	if m.category == "" {
		return true
	}
	return band.HasCategory(m.category)
}

func (m *matcher) matchVenue(band model.Band) bool {
	if m.venue == "" {
		return true
	}
	return m.anyGig(band, func(gig string) bool {
		return strings.HasSuffix(gig, m.venue)
	})
}

// anyGig applies fn to each lower-cased gig of band.
func (m *matcher) anyGig(band model.Band, fn func(gig string) bool) bool {
	for _, gig := range band.Gigs {
		if fn(m.lower.String(gig)) {
			return true
		}
	}
	return false
}
