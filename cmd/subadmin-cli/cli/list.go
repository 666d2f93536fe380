package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/target/subscription-admin/internal/domain/listing"
	"github.com/target/subscription-admin/internal/domain/model"
)

// listResult is the structured output of every list command.
type listResult[T any] struct {
	Items      []T                  `json:"items"`
	Pagination model.PaginationMeta `json:"pagination"`
	Counts     map[string]int       `json:"counts,omitempty"`
}

// loadList fetches the controller's requested page and returns its settled state.
func loadList[T any, F comparable](ctx context.Context, list *listing.Controller[T, F]) (listing.State[T, F], error) {
	if err := list.Load(ctx); err != nil {
		return listing.State[T, F]{}, err
	}
	return list.State(), nil
}

func resultOf[T any, F comparable](st listing.State[T, F]) listResult[T] {
	return listResult[T]{Items: st.Items, Pagination: st.Meta, Counts: st.Counts}
}

// pageFooter summarizes the loaded page, e.g. "Page 3 of 9 (87 total)  1 … 2 [3] 4 … 9".
func pageFooter(meta model.PaginationMeta) string {
	if meta.TotalPages <= 1 {
		return fmt.Sprintf("%d total", meta.TotalCount)
	}
	window := listing.ResolveWindow(meta, listing.MaxVisibleDesktop)
	parts := make([]string, 0, len(window))
	for _, e := range window {
		if !e.IsEllipsis && e.Number == meta.CurrentPage {
			parts = append(parts, "["+e.String()+"]")
			continue
		}
		parts = append(parts, e.String())
	}
	return fmt.Sprintf("Page %d of %d (%d total)  %s",
		meta.CurrentPage, meta.TotalPages, meta.TotalCount, strings.Join(parts, " "))
}
