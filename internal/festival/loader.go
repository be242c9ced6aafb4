package festival

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/handiism/festival-bands/internal/http"
	"github.com/handiism/festival-bands/internal/model"
)

// DefaultDataset is the dataset location used when none is configured.
const DefaultDataset = "kaustinen_2025_bands.json"

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// String returns the lower-case name of the level.
func (l ProgressLevel) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelVerbose:
		return "verbose"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelSuccess:
		return "success"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// ProgressEvent represents a loading progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Loader fetches the dataset from a fixed location and parses it.
//
// The source is either an http(s) URL, fetched through the HTTP client,
// or a local file path. Loading happens once per call to Load; failures are
// not retried.
//
// Example usage:
//
//	loader := festival.NewLoader("kaustinen_2025_bands.json", http.NewClient(), nil)
//	catalog, err := loader.Load(ctx)
//	if err != nil {
//	    fmt.Println("Error loading bands:", err)
//	}
type Loader struct {
	source     string
	client     *http.Client
	onProgress func(ProgressEvent)
}

// NewLoader creates a Loader for source.
//
// An empty source falls back to DefaultDataset. A nil client is replaced by
// http.NewClient(). onProgress may be nil.
func NewLoader(source string, client *http.Client, onProgress func(ProgressEvent)) *Loader {
	if source == "" {
		source = DefaultDataset
	}
	if client == nil {
		client = http.NewClient()
	}
	return &Loader{
		source:     source,
		client:     client,
		onProgress: onProgress,
	}
}

// Source returns the dataset location.
func (l *Loader) Source() string {
	return l.source
}

// Load fetches and parses the dataset.
//
// Every failure is returned as a *LoadError.
func (l *Loader) Load(ctx context.Context) (*model.Catalog, error) {
	l.progress(ProgressEvent{Message: fmt.Sprintf("Loading bands from %s", l.source), Level: LevelVerbose})

	data, err := l.fetch(ctx)
	if err != nil {
		return nil, l.fail(err)
	}

	catalog, err := ParseDataset(data)
	if err != nil {
		return nil, l.fail(err)
	}

	l.progress(ProgressEvent{
		Message: fmt.Sprintf("Loaded %d bands (%d dates, %d categories, %d venues)",
			len(catalog.Bands), len(catalog.Options.Dates), len(catalog.Options.Categories), len(catalog.Options.Venues)),
		Level: LevelSuccess,
	})
	return catalog, nil
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	if isRemote(l.source) {
		return l.client.Get(ctx, l.source)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(l.source)
}

func (l *Loader) fail(err error) error {
	loadErr := &LoadError{Source: l.source, Err: err}
	l.progress(ProgressEvent{Message: fmt.Sprintf("Error loading bands: %v", loadErr), Level: LevelError})
	return loadErr
}

func (l *Loader) progress(event ProgressEvent) {
	if l.onProgress != nil {
		l.onProgress(event)
	}
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
