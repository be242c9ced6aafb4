package controller

import (
	"context"

	"github.com/handiism/festival-bands/internal/filter"
	"github.com/handiism/festival-bands/internal/model"
	"github.com/handiism/festival-bands/internal/render"
)

// Source provides the catalog once. *festival.Loader implements it.
type Source interface {
	Load(ctx context.Context) (*model.Catalog, error)
}

// Controller wires criteria changes to the filter and the renderer.
//
// Every change recomputes the visible list and renders it before returning.
// Until a catalog is loaded, changes are remembered but nothing is
// rendered; after a failed load the error stays on display.
//
// A Controller is not safe for concurrent use. Callers drive it from a
// single event loop.
type Controller struct {
	renderer render.Renderer
	catalog  *model.Catalog
	criteria filter.Criteria
	visible  []model.Band
}

// New creates a Controller that draws through r.
func New(r render.Renderer) *Controller {
	return &Controller{renderer: r}
}

// Load fetches the catalog from src and shows it.
//
// On failure the error is rendered and returned; the controls are left
// unpopulated and no filtering takes place.
func (c *Controller) Load(ctx context.Context, src Source) error {
	catalog, err := src.Load(ctx)
	if err != nil {
		c.Fail(err)
		return err
	}
	c.Ready(catalog)
	return nil
}

// Ready installs a loaded catalog: it populates the controls and renders
// the list for the current criteria.
func (c *Controller) Ready(catalog *model.Catalog) {
	c.catalog = catalog
	c.renderer.PopulateControls(catalog.Options)
	c.refresh()
}

// Fail renders a load failure.
func (c *Controller) Fail(err error) {
	c.catalog = nil
	c.visible = nil
	c.renderer.RenderError(err)
}

// SetSearch updates the free-text term and re-renders.
func (c *Controller) SetSearch(term string) {
	c.criteria.Search = term
	c.refresh()
}

// SetDate updates the selected date and re-renders.
func (c *Controller) SetDate(date string) {
	c.criteria.Date = date
	c.refresh()
}

// SetCategory updates the selected category and re-renders.
func (c *Controller) SetCategory(category string) {
	c.criteria.Category = category
	c.refresh()
}

// SetVenue updates the selected venue and re-renders.
func (c *Controller) SetVenue(venue string) {
	c.criteria.Venue = venue
	c.refresh()
}

// SetCriteria replaces all criteria at once and re-renders.
func (c *Controller) SetCriteria(criteria filter.Criteria) {
	c.criteria = criteria
	c.refresh()
}

// Clear resets every criterion and renders the full list.
func (c *Controller) Clear() {
	c.SetCriteria(filter.Criteria{})
}

// Criteria returns the current criteria.
func (c *Controller) Criteria() filter.Criteria {
	return c.criteria
}

// Catalog returns the loaded catalog, or nil before a successful load.
func (c *Controller) Catalog() *model.Catalog {
	return c.catalog
}

// Visible returns the bands currently displayed.
func (c *Controller) Visible() []model.Band {
	return c.visible
}

func (c *Controller) refresh() {
	if c.catalog == nil {
		return
	}
	c.visible = filter.Apply(c.criteria, c.catalog.Bands)
	c.renderer.RenderList(c.visible)
}
