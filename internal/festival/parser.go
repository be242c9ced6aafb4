package festival

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/handiism/festival-bands/internal/festival/dto"
	"github.com/handiism/festival-bands/internal/model"
)

// ParseDataset decodes a dataset document into a Catalog.
//
// The document must be a JSON array of band objects:
//
//	[
//	  {"name": "A", "description": "d", "category": ["Rock"], "gigs": ["MA 09.00 - 10.00 @ Hall1"]}
//	]
//
// The filter options are derived while building the Catalog.
//
// Returns an error if:
//   - The document is not valid JSON
//   - The top-level value is not an array (wraps ErrNotArray)
func ParseDataset(data []byte) (*model.Catalog, error) {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("%w: got null", ErrNotArray)
	}

	var jsonBands []dto.JSONBand
	if err := json.Unmarshal(trimmed, &jsonBands); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Type == reflect.TypeOf(jsonBands) {
			return nil, fmt.Errorf("%w: got %s", ErrNotArray, typeErr.Value)
		}
		return nil, fmt.Errorf("failed to parse dataset JSON: %w", err)
	}

	bands := make([]model.Band, 0, len(jsonBands))
	for i := range jsonBands {
		bands = append(bands, jsonBands[i].ToBand())
	}

	return model.NewCatalog(bands), nil
}
