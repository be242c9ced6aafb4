package render

import "github.com/handiism/festival-bands/internal/model"

const (
	// NoResults is shown in place of the list when nothing matches.
	NoResults = "No bands found."

	// CategoryLabel prefixes the comma-joined category list of a band.
	CategoryLabel = "Category:"

	// errorPrefix starts the message shown when loading fails.
	errorPrefix = "Error loading bands: "
)

// Renderer is the display capability driven by the controller.
//
// Every call replaces whatever was displayed before; rendering the same
// input twice gives the same output.
type Renderer interface {
	// RenderList shows bands in the given order, or the NoResults
	// placeholder when bands is empty.
	RenderList(bands []model.Band)

	// PopulateControls fills the date, category and venue controls.
	PopulateControls(opts model.FilterOptions)

	// RenderError replaces the list with a single error message.
	RenderError(err error)
}

// ErrorMessage formats the message shown for a load failure.
func ErrorMessage(err error) string {
	if err == nil {
		return errorPrefix + "unknown error"
	}
	return errorPrefix + err.Error()
}
