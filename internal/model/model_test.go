package model

import (
	"reflect"
	"testing"
)

func TestParseGig(t *testing.T) {
	tests := []struct {
		gig       string
		wantDay   string
		wantVenue string
		wantOK    bool
	}{
		{"TI 10.00 - 11.00 @ Maunon makasiini", "TI", "Maunon makasiini", true},
		{"  KE 12.00 - 13.00 @   Kaustinen Hall  ", "KE", "Kaustinen Hall", true},
		{"PE@Tent", "PE", "Tent", true},
		{"MA 09.00 - 10.00 Hall1", "", "", false},
		{"MA 09.00 @ Hall1 @ Hall2", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.gig, func(t *testing.T) {
			day, venue, ok := ParseGig(tt.gig)
			if ok != tt.wantOK {
				t.Fatalf("ParseGig(%q) ok = %v, want %v", tt.gig, ok, tt.wantOK)
			}
			if day != tt.wantDay {
				t.Errorf("ParseGig(%q) day = %q, want %q", tt.gig, day, tt.wantDay)
			}
			if venue != tt.wantVenue {
				t.Errorf("ParseGig(%q) venue = %q, want %q", tt.gig, venue, tt.wantVenue)
			}
		})
	}
}

func TestBand_HasCategory(t *testing.T) {
	band := Band{Name: "A", Category: []string{"Rock", "Indie"}}

	tests := []struct {
		category string
		want     bool
	}{
		{"Rock", true},
		{"Indie", true},
		{"rock", false},
		{"Pop", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			if got := band.HasCategory(tt.category); got != tt.want {
				t.Errorf("HasCategory(%q) = %v, want %v", tt.category, got, tt.want)
			}
		})
	}
}

func TestNewCatalog_DerivesSortedOptions(t *testing.T) {
	bands := []Band{
		{
			Name:     "B",
			Category: []string{"Rock", "Folk"},
			Gigs:     []string{"TI 10.00 - 11.00 @ Maunon makasiini", "MA 09.00 - 10.00 @ Hall1"},
		},
		{
			Name:     "A",
			Category: []string{"Folk", "Indie"},
			Gigs:     []string{"MA 12.00 - 13.00 @ Hall1", "KE 18.00 - 19.00 @ Areena"},
		},
	}

	catalog := NewCatalog(bands)

	want := FilterOptions{
		Dates:      []string{"KE", "MA", "TI"},
		Categories: []string{"Folk", "Indie", "Rock"},
		Venues:     []string{"Areena", "Hall1", "Maunon makasiini"},
	}
	if !reflect.DeepEqual(catalog.Options, want) {
		t.Errorf("Options = %+v, want %+v", catalog.Options, want)
	}

	if catalog.Bands[0].Name != "B" {
		t.Errorf("Bands[0].Name = %q, want %q (order must be preserved)", catalog.Bands[0].Name, "B")
	}
}

func TestDeriveOptions_SkipsMalformedGigs(t *testing.T) {
	bands := []Band{
		{
			Name: "A",
			Gigs: []string{
				"MA 09.00 - 10.00 Hall1",
				"TI 10.00 @ Hall1 @ Hall2",
				"KE 11.00 - 12.00 @ Tent",
			},
		},
	}

	opts := DeriveOptions(bands)

	if !reflect.DeepEqual(opts.Dates, []string{"KE"}) {
		t.Errorf("Dates = %v, want [KE]", opts.Dates)
	}
	if !reflect.DeepEqual(opts.Venues, []string{"Tent"}) {
		t.Errorf("Venues = %v, want [Tent]", opts.Venues)
	}
	if len(bands[0].Gigs) != 3 {
		t.Errorf("gigs were modified: %v", bands[0].Gigs)
	}
}

func TestDeriveOptions_SkipsEmptyTokens(t *testing.T) {
	bands := []Band{{Name: "A", Gigs: []string{"@ Hall1", "MA 09.00 @   "}}}

	opts := DeriveOptions(bands)

	if !reflect.DeepEqual(opts.Dates, []string{"MA"}) {
		t.Errorf("Dates = %v, want [MA]", opts.Dates)
	}
	if !reflect.DeepEqual(opts.Venues, []string{"Hall1"}) {
		t.Errorf("Venues = %v, want [Hall1]", opts.Venues)
	}
}

func TestDeriveOptions_CodePointOrder(t *testing.T) {
	bands := []Band{{Name: "A", Category: []string{"ä", "b", "B", "a"}}}

	opts := DeriveOptions(bands)

	want := []string{"B", "a", "b", "ä"}
	if !reflect.DeepEqual(opts.Categories, want) {
		t.Errorf("Categories = %v, want %v", opts.Categories, want)
	}
}
