// Package filter selects the bands matching a set of criteria.
//
// # Matching Rules
//
// A band is kept only when every active criterion matches:
//   - Search: case-insensitive substring of the name or the description
//   - Date: case-insensitive prefix of at least one gig string
//   - Category: exact, case-sensitive membership in the band's categories
//   - Venue: case-insensitive suffix of at least one gig string
//
// Empty criteria always match. Apply is a pure function: the result keeps
// the input order and the input is never modified.
//
// # Basic Usage
//
//	visible := filter.Apply(filter.Criteria{Venue: "maunon makasiini"}, catalog.Bands)
package filter
