// Package model defines the core data structures used throughout
// the festival-bands application.
//
// # Band
//
// Band is one entry of the festival dataset:
//
//	band := model.Band{Name: "A", Category: []string{"Rock"}, Gigs: []string{"MA 09.00 - 10.00 @ Hall1"}}
//	band.HasCategory("Rock") // true
//
// # Gig Strings
//
// Gigs are free text of the form "<day> <time range> @ <venue>". ParseGig
// extracts the day token and the venue:
//
//	day, venue, ok := model.ParseGig("TI 10.00 - 11.00 @ Maunon makasiini")
//	// day = "TI", venue = "Maunon makasiini", ok = true
//
// # Catalog
//
// Catalog holds the loaded bands and the filter options derived from them.
// It is built once by NewCatalog and shared read-only with the filter and
// render packages:
//
//	catalog := model.NewCatalog(bands)
//	fmt.Println(catalog.Options.Venues)
package model
