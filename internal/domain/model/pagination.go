//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/guregu/null/v6"
)

// Ellipsis is the wire marker for a collapsed run of page numbers.
const Ellipsis = "..."

// DefaultPageSize is the page size the backend applies when none is requested.
const DefaultPageSize = 10

// PageEntry is one slot in a page-number window: either a page number or an ellipsis.
type PageEntry struct {
	Number     int
	IsEllipsis bool
}

// PageNumber returns a numbered window entry.
func PageNumber(n int) PageEntry { return PageEntry{Number: n} }

// Gap returns an ellipsis window entry.
func Gap() PageEntry { return PageEntry{IsEllipsis: true} }

// String renders the entry as shown in the UI.
func (e PageEntry) String() string {
	if e.IsEllipsis {
		return Ellipsis
	}
	return strconv.Itoa(e.Number)
}

// MarshalJSON encodes numbers as JSON numbers and gaps as "...".
func (e PageEntry) MarshalJSON() ([]byte, error) {
	if e.IsEllipsis {
		return json.Marshal(Ellipsis)
	}
	return json.Marshal(e.Number)
}

// UnmarshalJSON accepts a number, a numeric string, or an ellipsis string.
func (e *PageEntry) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == Ellipsis || s == "…" {
			*e = Gap()
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("page entry %q is neither a number nor an ellipsis", s)
		}
		*e = PageNumber(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode page entry: %w", err)
	}
	*e = PageNumber(n)
	return nil
}

// PaginationMeta is the normalized pagination block shared by every list screen.
// PageNumbers is empty when the backend did not compute a window.
type PaginationMeta struct {
	CurrentPage  int         `json:"current_page"`
	PageSize     int         `json:"page_size"`
	TotalPages   int         `json:"total_pages"`
	TotalCount   int         `json:"total_count"`
	StartIndex   int         `json:"start_index"`
	EndIndex     int         `json:"end_index"`
	HasPrevious  bool        `json:"has_previous"`
	HasNext      bool        `json:"has_next"`
	PreviousPage null.Int32  `json:"previous_page"`
	NextPage     null.Int32  `json:"next_page"`
	PageNumbers  []PageEntry `json:"page_numbers,omitempty"`
}

// AdminPagination is the pagination block returned by the administrators list.
type AdminPagination struct {
	CurrentPage int  `json:"current_page"`
	PerPage     int  `json:"per_page"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"total_pages"`
	StartIndex  int  `json:"start_index"`
	EndIndex    int  `json:"end_index"`
	HasPrev     bool `json:"has_prev"`
	HasNext     bool `json:"has_next"`
}

// Meta converts the administrators pagination block into PaginationMeta.
func (p AdminPagination) Meta() PaginationMeta {
	return PaginationMeta{
		CurrentPage: p.CurrentPage,
		PageSize:    p.PerPage,
		TotalPages:  p.TotalPages,
		TotalCount:  p.Total,
		StartIndex:  p.StartIndex,
		EndIndex:    p.EndIndex,
		HasPrevious: p.HasPrev,
		HasNext:     p.HasNext,
	}
}

// OffsetMeta builds PaginationMeta for endpoints that only report page, size and total.
// itemCount is the number of items actually returned for the page.
func OffsetMeta(page, size, total, itemCount int) PaginationMeta {
	if size < 1 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	pages := 0
	if total > 0 {
		pages = (total + size - 1) / size
	}
	meta := PaginationMeta{
		CurrentPage: page,
		PageSize:    size,
		TotalPages:  pages,
		TotalCount:  total,
		HasPrevious: page > 1,
		HasNext:     page < pages,
	}
	if itemCount > 0 {
		meta.StartIndex = (page-1)*size + 1
		meta.EndIndex = meta.StartIndex + itemCount - 1
	}
	return meta
}

// Page is one fetched page of a resource: the items plus the metadata that came with them.
// Counts carries filter-scoped totals (e.g. all/free/subscribers) when the endpoint reports them.
type Page[T any] struct {
	Items  []T
	Meta   PaginationMeta
	Counts map[string]int
}
