package festival

import (
	"errors"
	"fmt"
)

// ErrNotArray is returned when the dataset's top-level value is not a
// JSON array of bands.
var ErrNotArray = errors.New("dataset is not an array of bands")

// LoadError reports a failure to fetch or parse the dataset.
//
// It is the only error kind of the loader. Use errors.As to inspect it:
//
//	var loadErr *festival.LoadError
//	if errors.As(err, &loadErr) {
//	    fmt.Println("could not load", loadErr.Source)
//	}
type LoadError struct {
	// Source is the dataset location that was being loaded.
	Source string

	// Err is the underlying fetch or parse error.
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
