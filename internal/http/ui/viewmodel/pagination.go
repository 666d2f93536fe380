package viewmodel

// PageLink is one slot of a rendered page-number window.
type PageLink struct {
	Number     int
	URL        string
	IsCurrent  bool
	IsEllipsis bool
}

// Pagination contains pagination metadata for list views.
// Links is the desktop window and MobileLinks the narrower one shown on small screens.
type Pagination struct {
	Page        int
	TotalPages  int
	TotalCount  int
	StartIndex  int
	EndIndex    int
	HasPrev     bool
	HasNext     bool
	PrevURL     string
	NextURL     string
	Links       []PageLink
	MobileLinks []PageLink
}

// Show reports whether the pagination bar has anything to navigate.
func (p Pagination) Show() bool {
	return p.TotalPages > 1 || p.HasPrev || p.HasNext
}
