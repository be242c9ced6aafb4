package render

import (
	"bytes"
	"io"
	"strings"

	"github.com/handiism/festival-bands/internal/filter"
	"github.com/handiism/festival-bands/internal/model"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Element IDs of the page controls.
const (
	ContainerID      = "bandContainer"
	SearchInputID    = "searchInput"
	DateFilterID     = "dateFilter"
	CategoryFilterID = "categoryFilter"
	VenueFilterID    = "venueFilter"
	ClearButtonID    = "clearFiltersBtn"
)

// HTML renders the band list as HTML markup.
//
// The list container and the three selection controls are kept as
// gomponents nodes. Container returns the list alone; Page wraps it into a
// full document with the search field and controls.
//
// Each band becomes:
//
//	<div class="band">
//	  <h2>Name</h2>
//	  <p><strong>Category:</strong> Rock, Indie</p>
//	  <p>Description</p>
//	  <ul><li>gig</li>...</ul>
//	</div>
//
// All text is escaped, so it is shown verbatim.
type HTML struct {
	title     string
	container g.Node
	options   model.FilterOptions
}

// NewHTML creates an HTML renderer with an empty container.
func NewHTML(title string) *HTML {
	return &HTML{
		title:     title,
		container: containerNode(),
	}
}

// RenderList implements Renderer.
func (r *HTML) RenderList(bands []model.Band) {
	if len(bands) == 0 {
		r.container = containerNode(h.P(g.Text(NoResults)))
		return
	}
	r.container = containerNode(g.Map(bands, bandNode))
}

// PopulateControls implements Renderer.
func (r *HTML) PopulateControls(opts model.FilterOptions) {
	r.options = opts
}

// RenderError implements Renderer.
func (r *HTML) RenderError(err error) {
	r.container = containerNode(h.P(g.Text(ErrorMessage(err))))
}

// Container returns the current list container node.
func (r *HTML) Container() g.Node {
	return r.container
}

// Controls returns the three selection controls with c's values selected.
func (r *HTML) Controls(c filter.Criteria) g.Node {
	return g.Group([]g.Node{
		selectNode(DateFilterID, "All dates", r.options.Dates, c.Date),
		selectNode(CategoryFilterID, "All categories", r.options.Categories, c.Category),
		selectNode(VenueFilterID, "All venues", r.options.Venues, c.Venue),
	})
}

// Page returns a complete HTML document showing the controls and the
// current list.
func (r *HTML) Page(c filter.Criteria) g.Node {
	return h.Doctype(
		h.HTML(
			h.Head(
				h.Meta(h.Charset("UTF-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1.0")),
				h.TitleEl(g.Text(r.title)),
			),
			h.Body(
				h.H1(g.Text(r.title)),
				h.Div(h.Class("filters"),
					h.Input(h.Type("text"), h.ID(SearchInputID), h.Placeholder("Search bands..."), h.Value(c.Search)),
					r.Controls(c),
					h.Button(h.ID(ClearButtonID), h.Type("button"), g.Text("Clear filters")),
				),
				r.container,
			),
		),
	)
}

// String returns the markup of the current container.
func (r *HTML) String() string {
	var b bytes.Buffer
	_ = r.container.Render(&b)
	return b.String()
}

// WritePage writes the full document to w.
func (r *HTML) WritePage(w io.Writer, c filter.Criteria) error {
	return r.Page(c).Render(w)
}

func containerNode(children ...g.Node) g.Node {
	return h.Div(h.ID(ContainerID), g.Group(children))
}

func bandNode(band model.Band) g.Node {
	return h.Div(h.Class("band"),
		h.H2(g.Text(band.Name)),
		h.P(h.Strong(g.Text(CategoryLabel)), g.Text(" "+strings.Join(band.Category, ", "))),
		h.P(g.Text(band.Description)),
		h.Ul(g.Map(band.Gigs, func(gig string) g.Node {
			return h.Li(g.Text(gig))
		})),
	)
}

// selectNode builds a <select> whose first option is the empty "all"
// choice, followed by options in the given order.
func selectNode(id, allLabel string, options []string, selected string) g.Node {
	return h.Select(h.ID(id), h.Name(id),
		h.Option(h.Value(""), g.Text(allLabel), g.If(selected == "", h.Selected())),
		g.Map(options, func(opt string) g.Node {
			return h.Option(h.Value(opt), g.Text(opt), g.If(opt == selected, h.Selected()))
		}),
	)
}
