package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/festival-bands/internal/model"
)

// DefaultAccent is the accent colour used for band names.
const DefaultAccent = "#FF6B6B"

// Styles for the text renderer
type Styles struct {
	Name        lipgloss.Style
	Label       lipgloss.Style
	Description lipgloss.Style
	Gig         lipgloss.Style
	Empty       lipgloss.Style
	Error       lipgloss.Style
}

// DefaultStyles returns the styles used by NewText, with band names in
// the given accent colour.
func DefaultStyles(accent string) Styles {
	if accent == "" {
		accent = DefaultAccent
	}
	return Styles{
		Name: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(accent)),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4")),
		Description: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC")),
		Gig: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500")),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
	}
}

// Text renders the band list as styled terminal text.
//
// The rendered list is kept in memory and returned by String; the last
// populated options are returned by Options.
type Text struct {
	styles  Styles
	content string
	options model.FilterOptions
	failed  bool
}

// NewText creates a text renderer using DefaultStyles(accent).
func NewText(accent string) *Text {
	return &Text{styles: DefaultStyles(accent)}
}

// RenderList implements Renderer.
func (r *Text) RenderList(bands []model.Band) {
	r.failed = false
	if len(bands) == 0 {
		r.content = r.styles.Empty.Render(NoResults)
		return
	}

	blocks := make([]string, 0, len(bands))
	for _, band := range bands {
		blocks = append(blocks, r.bandBlock(band))
	}
	r.content = strings.Join(blocks, "\n\n")
}

// PopulateControls implements Renderer.
func (r *Text) PopulateControls(opts model.FilterOptions) {
	r.options = opts
}

// RenderError implements Renderer.
func (r *Text) RenderError(err error) {
	r.failed = true
	r.content = r.styles.Error.Render(ErrorMessage(err))
}

// String returns the current rendered list.
func (r *Text) String() string {
	return r.content
}

// Options returns the last populated filter options.
func (r *Text) Options() model.FilterOptions {
	return r.options
}

// Failed reports whether the current content is an error message.
func (r *Text) Failed() bool {
	return r.failed
}

func (r *Text) bandBlock(band model.Band) string {
	var b strings.Builder

	b.WriteString(r.styles.Name.Render(band.Name))
	b.WriteString("\n")
	b.WriteString(r.styles.Label.Render(CategoryLabel))
	b.WriteString(" ")
	b.WriteString(strings.Join(band.Category, ", "))
	b.WriteString("\n")
	b.WriteString(r.styles.Description.Render(band.Description))
	for _, gig := range band.Gigs {
		b.WriteString("\n")
		b.WriteString(r.styles.Gig.Render("  • " + gig))
	}

	return b.String()
}

// FormatOptions lists the option sets as plain text, one set per section.
func FormatOptions(opts model.FilterOptions) string {
	var b strings.Builder
	section := func(title string, values []string) {
		b.WriteString(title)
		b.WriteString(":\n")
		for _, v := range values {
			b.WriteString("  ")
			b.WriteString(v)
			b.WriteString("\n")
		}
	}
	section("Dates", opts.Dates)
	section("Categories", opts.Categories)
	section("Venues", opts.Venues)
	return b.String()
}
