package httpx

import (
	"net/url"

	"github.com/target/subscription-admin/internal/http/uiutil"
)

const (
	// StrTrue represents the string "true" for boolean form values.
	StrTrue = "true"
	// StrFalse represents the string "false" for boolean form values.
	StrFalse = "false"
)

// FilterTab is one entry of the filter bar above a list, with the count reported for it.
type FilterTab struct {
	Label  string
	Value  string
	Count  int
	URL    string
	Active bool
}

// filterTabs builds the filter bar for a list whose filter lives in the param query parameter.
// Every tab links to page 1 of its filter; counts come from the last fetch.
func filterTabs[F ~string](basePath, param string, values []F, current F, counts map[string]int) []FilterTab {
	tabs := make([]FilterTab, 0, len(values))
	for _, v := range values {
		q := url.Values{}
		q.Set(param, string(v))
		tabs = append(tabs, FilterTab{
			Label:  uiutil.Humanize(string(v)),
			Value:  string(v),
			Count:  counts[string(v)],
			URL:    buildPageURL(basePath, q, 1),
			Active: v == current,
		})
	}
	return tabs
}
