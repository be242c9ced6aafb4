package filter

// Criteria is the current combination of search term and selected filter
// values. An empty field means "not selected" and matches every band.
type Criteria struct {
	// Search is matched case-insensitively against name and description.
	Search string

	// Date is matched case-insensitively as a prefix of a gig string.
	Date string

	// Category must be one of the band's categories (case-sensitive).
	Category string

	// Venue is matched case-insensitively as a suffix of a gig string.
	Venue string
}

// IsEmpty reports whether no criterion is active.
func (c Criteria) IsEmpty() bool {
	return c == Criteria{}
}
