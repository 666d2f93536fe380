// Package listing implements the list controller shared by every paginated screen:
// page and filter driven fetches, page-number windows, and local reconciliation after mutations.
package listing

import "github.com/target/subscription-admin/internal/domain/model"

// Default window widths.
const (
	MaxVisibleDesktop = 5
	MaxVisibleMobile  = 3
	minVisible        = 3
)

// Window derives the ellipsis-collapsed page sequence for current out of total pages.
//
// With total <= maxVisible every page is listed. Otherwise the first or last maxVisible-1 pages are
// shown next to the far end when current sits near that end, and a run of maxVisible-2 pages
// centered on current is shown between page 1 and the last page in all other cases.
// current is clamped into [1, total] and total below 1 is treated as a single page, so the
// result always contains the (clamped) current page exactly once.
func Window(current, total, maxVisible int) []model.PageEntry {
	if total < 1 {
		total = 1
	}
	current = clamp(current, 1, total)
	if maxVisible < minVisible {
		maxVisible = minVisible
	}

	if total <= maxVisible {
		return pageRange(1, total)
	}

	half := (maxVisible - 3) / 2
	cluster := maxVisible - 1

	switch {
	case current <= half+2:
		out := pageRange(1, cluster)
		return append(out, model.Gap(), model.PageNumber(total))
	case current >= total-half-1:
		out := []model.PageEntry{model.PageNumber(1), model.Gap()}
		return append(out, pageRange(total-cluster+1, total)...)
	default:
		out := []model.PageEntry{model.PageNumber(1), model.Gap()}
		out = append(out, pageRange(current-half, current+half)...)
		return append(out, model.Gap(), model.PageNumber(total))
	}
}

// ResolveWindow returns the backend-computed window when one was supplied and derives one otherwise.
func ResolveWindow(meta model.PaginationMeta, maxVisible int) []model.PageEntry {
	if len(meta.PageNumbers) > 0 {
		out := make([]model.PageEntry, len(meta.PageNumbers))
		copy(out, meta.PageNumbers)
		return out
	}
	return Window(meta.CurrentPage, meta.TotalPages, maxVisible)
}

func pageRange(from, to int) []model.PageEntry {
	out := make([]model.PageEntry, 0, to-from+3)
	for i := from; i <= to; i++ {
		out = append(out, model.PageNumber(i))
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
