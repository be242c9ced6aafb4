package model

import "sort"

// FilterOptions holds the selectable values derived from a dataset.
//
// Each slice is deduplicated and sorted by code point, ready to be shown
// as the options of a selection control.
type FilterOptions struct {
	Dates      []string
	Categories []string
	Venues     []string
}

// Catalog is the loaded dataset together with its derived filter options.
//
// A Catalog is created once when loading completes and is read-only
// afterwards. Filtering never modifies it.
type Catalog struct {
	Bands   []Band
	Options FilterOptions
}

// NewCatalog wraps bands and derives the filter options by scanning every
// gig of every band.
//
// Gigs that ParseGig rejects contribute nothing to the date and venue
// options, but remain part of their band. Empty day or venue tokens are
// skipped since they cannot be told apart from "no selection".
func NewCatalog(bands []Band) *Catalog {
	return &Catalog{
		Bands:   bands,
		Options: DeriveOptions(bands),
	}
}

// DeriveOptions computes the date, category and venue option sets.
func DeriveOptions(bands []Band) FilterOptions {
	dates := make(map[string]struct{})
	categories := make(map[string]struct{})
	venues := make(map[string]struct{})

	for _, band := range bands {
		for _, gig := range band.Gigs {
			day, venue, ok := ParseGig(gig)
			if !ok {
				continue
			}
			if day != "" {
				dates[day] = struct{}{}
			}
			if venue != "" {
				venues[venue] = struct{}{}
			}
		}

		for _, category := range band.Category {
			categories[category] = struct{}{}
		}
	}

	return FilterOptions{
		Dates:      sortedKeys(dates),
		Categories: sortedKeys(categories),
		Venues:     sortedKeys(venues),
	}
}

// sortedKeys returns the keys of set in byte order, which for valid UTF-8
// equals code point order.
func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
