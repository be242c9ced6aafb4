package model

import (
	"slices"
	"strings"
)

// gigSeparator splits a gig string into its schedule and venue halves.
const gigSeparator = "@"

// Band represents a single performer in the festival dataset.
//
// Band is immutable once loaded. Gigs are kept verbatim; they are only
// parsed when deriving filter options (see ParseGig).
//
// Example:
//
//	band := Band{
//	    Name:        "The Echoes",
//	    Description: "Folk from the north",
//	    Category:    []string{"Folk", "Indie"},
//	    Gigs:        []string{"TI 10.00 - 11.00 @ Maunon makasiini"},
//	}
type Band struct {
	// Name is the display name of the band.
	Name string

	// Description is free text shown under the name.
	Description string

	// Category holds the band's tags. Used as a membership set.
	Category []string

	// Gigs holds scheduled performances in the form
	// "<day> <time range> @ <venue>".
	Gigs []string
}

// HasCategory reports whether the band is tagged with category.
// The comparison is exact and case-sensitive.
func (b Band) HasCategory(category string) bool {
	return slices.Contains(b.Category, category)
}

// ParseGig extracts the day token and venue from a gig string.
//
// A gig like "TI 10.00 - 11.00 @ Maunon makasiini" yields day "TI" and
// venue "Maunon makasiini". The day is the first space-separated token of
// the trimmed text before the separator; the venue is the trimmed text
// after it.
//
// ok is false when the gig does not contain exactly one "@".
func ParseGig(gig string) (day, venue string, ok bool) {
	parts := strings.Split(gig, gigSeparator)
	if len(parts) != 2 {
		return "", "", false
	}

	schedule := strings.TrimSpace(parts[0])
	day, _, _ = strings.Cut(schedule, " ")
	venue = strings.TrimSpace(parts[1])

	return day, venue, true
}
