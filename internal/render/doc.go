// Package render turns filtered band lists into displayable output.
//
// The controller only knows the Renderer capability; concrete renderers
// decide what "the display" is:
//   - HTML builds the markup with gomponents (list container, select
//     controls and a full page)
//   - Text builds lipgloss-styled terminal output, used by the CLI and
//     the TUI
//
// # Rendering Rules
//
// Each band shows its name, "Category: " followed by the comma-joined
// categories, its description and one item per gig string, verbatim. An
// empty list shows NoResults. Option sets are shown in the order given,
// which is already sorted by the model package.
//
// # Basic Usage
//
//	r := render.NewHTML("Kaustinen 2025")
//	r.PopulateControls(catalog.Options)
//	r.RenderList(filter.Apply(criteria, catalog.Bands))
//	err := r.WritePage(os.Stdout, criteria)
package render
