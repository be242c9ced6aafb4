package festival

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	bandshttp "github.com/handiism/festival-bands/internal/http"
)

const sampleDataset = `[
	{"name":"A","description":"d","category":["Rock"],"gigs":["MA 09.00 - 10.00 @ Hall1"]},
	{"name":"B","description":"e","category":["Folk","Rock"],"gigs":["TI 10.00 - 11.00 @ Maunon makasiini","no venue here"]}
]`

func TestParseDataset(t *testing.T) {
	catalog, err := ParseDataset([]byte(sampleDataset))
	if err != nil {
		t.Fatalf("ParseDataset failed: %v", err)
	}

	if len(catalog.Bands) != 2 {
		t.Fatalf("Band count = %d, want 2", len(catalog.Bands))
	}
	if catalog.Bands[0].Name != "A" {
		t.Errorf("Bands[0].Name = %q, want %q", catalog.Bands[0].Name, "A")
	}
	if len(catalog.Bands[1].Gigs) != 2 {
		t.Errorf("Bands[1] gig count = %d, want 2", len(catalog.Bands[1].Gigs))
	}
	if want := []string{"MA", "TI"}; !reflect.DeepEqual(catalog.Options.Dates, want) {
		t.Errorf("Dates = %v, want %v", catalog.Options.Dates, want)
	}
	if want := []string{"Folk", "Rock"}; !reflect.DeepEqual(catalog.Options.Categories, want) {
		t.Errorf("Categories = %v, want %v", catalog.Options.Categories, want)
	}
	if want := []string{"Hall1", "Maunon makasiini"}; !reflect.DeepEqual(catalog.Options.Venues, want) {
		t.Errorf("Venues = %v, want %v", catalog.Options.Venues, want)
	}
}

func TestParseDataset_MissingFields(t *testing.T) {
	catalog, err := ParseDataset([]byte(`[{"name":"Only a name"}]`))
	if err != nil {
		t.Fatalf("ParseDataset failed: %v", err)
	}

	band := catalog.Bands[0]
	if band.Description != "" || len(band.Category) != 0 || len(band.Gigs) != 0 {
		t.Errorf("expected blank fields, got %+v", band)
	}
}

func TestParseDataset_Errors(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantNoArray bool
	}{
		{"empty document", "", false},
		{"syntax error", `[{"name":`, false},
		{"object", `{"name":"A"}`, true},
		{"string", `"bands"`, true},
		{"null", `null`, true},
		{"bad field type", `[{"name": 5}]`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDataset([]byte(tt.input))
			if err == nil {
				t.Fatal("expected error but got none")
			}
			if got := errors.Is(err, ErrNotArray); got != tt.wantNoArray {
				t.Errorf("errors.Is(err, ErrNotArray) = %v, want %v (err: %v)", got, tt.wantNoArray, err)
			}
		})
	}
}

func TestLoader_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bands.json")
	if err := os.WriteFile(path, []byte(sampleDataset), 0644); err != nil {
		t.Fatal(err)
	}

	var events []ProgressEvent
	loader := NewLoader(path, nil, func(e ProgressEvent) {
		events = append(events, e)
	})

	catalog, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(catalog.Bands) != 2 {
		t.Errorf("Band count = %d, want 2", len(catalog.Bands))
	}
	if len(events) == 0 || events[len(events)-1].Level != LevelSuccess {
		t.Errorf("expected final success event, got %+v", events)
	}
}

func TestLoader_LoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/kaustinen_2025_bands.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleDataset))
	}))
	defer srv.Close()

	client := bandshttp.NewClient(bandshttp.WithHTTPClient(srv.Client()))

	catalog, err := NewLoader(srv.URL+"/kaustinen_2025_bands.json", client, nil).Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(catalog.Bands) != 2 {
		t.Errorf("Band count = %d, want 2", len(catalog.Bands))
	}

	_, err = NewLoader(srv.URL+"/missing.json", client, nil).Load(context.Background())
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
	if loadErr.Source != srv.URL+"/missing.json" {
		t.Errorf("Source = %q, want %q", loadErr.Source, srv.URL+"/missing.json")
	}
}

func TestLoader_LoadFailures(t *testing.T) {
	dir := t.TempDir()
	badPath := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(badPath, []byte(`{"not":"an array"}`), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		source string
	}{
		{"missing file", filepath.Join(dir, "missing.json")},
		{"not an array", badPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sawError bool
			loader := NewLoader(tt.source, nil, func(e ProgressEvent) {
				if e.Level == LevelError {
					sawError = true
				}
			})

			catalog, err := loader.Load(context.Background())
			if catalog != nil {
				t.Errorf("expected nil catalog, got %+v", catalog)
			}
			var loadErr *LoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("expected *LoadError, got %v", err)
			}
			if !sawError {
				t.Error("expected an error progress event")
			}
		})
	}
}

func TestLoader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader("does-not-matter.json", nil, nil).Load(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestNewLoader_DefaultSource(t *testing.T) {
	if got := NewLoader("", nil, nil).Source(); got != DefaultDataset {
		t.Errorf("Source() = %q, want %q", got, DefaultDataset)
	}
}
