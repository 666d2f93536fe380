package httpx

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/target/subscription-admin/internal/domain/listing"
	"github.com/target/subscription-admin/internal/domain/model"
	"github.com/target/subscription-admin/internal/http/ui/viewmodel"
)

// PaginationData contains pagination information for list views.
type PaginationData struct {
	Meta     model.PaginationMeta
	BasePath string
	// Query holds the list's identifying params (filter, status). Nil uses the request's query.
	Query url.Values
	// MaxVisible and MaxVisibleMobile bound the desktop and mobile page windows.
	// Zero uses the listing defaults.
	MaxVisible       int
	MaxVisibleMobile int
}

// TemplateDataBuilder provides a fluent API for building template data maps.
type TemplateDataBuilder struct {
	data map[string]any
	r    *http.Request
}

// NewTemplateData creates a new TemplateDataBuilder initialized with basePageData.
func NewTemplateData(r *http.Request, meta PageMeta) *TemplateDataBuilder {
	return &TemplateDataBuilder{
		data: basePageData(r, meta),
		r:    r,
	}
}

// WithPagination adds the pagination view model, including both page-number windows.
func (b *TemplateDataBuilder) WithPagination(opts PaginationData) *TemplateDataBuilder {
	q := opts.Query
	if q == nil {
		q = b.r.URL.Query()
	}
	b.data["Pagination"] = buildPagination(q, opts)
	return b
}

// WithError sets a general error message.
func (b *TemplateDataBuilder) WithError(msg string) *TemplateDataBuilder {
	b.data["Error"] = true
	b.data["ErrorMessage"] = msg
	return b
}

// WithFieldErrors adds field-level validation errors.
func (b *TemplateDataBuilder) WithFieldErrors(errs map[string]string) *TemplateDataBuilder {
	if len(errs) > 0 {
		b.data["Errors"] = errs
	}
	return b
}

// With adds a custom field to the template data.
func (b *TemplateDataBuilder) With(key string, value any) *TemplateDataBuilder {
	b.data[key] = value
	return b
}

// Build returns the final template data map.
func (b *TemplateDataBuilder) Build() map[string]any {
	return b.data
}

func buildPagination(q url.Values, opts PaginationData) viewmodel.Pagination {
	meta := opts.Meta
	page := meta.CurrentPage
	if page < 1 {
		page = 1
	}
	maxVisible := opts.MaxVisible
	if maxVisible <= 0 {
		maxVisible = listing.MaxVisibleDesktop
	}
	maxMobile := opts.MaxVisibleMobile
	if maxMobile <= 0 {
		maxMobile = listing.MaxVisibleMobile
	}

	p := viewmodel.Pagination{
		Page:       page,
		TotalPages: meta.TotalPages,
		TotalCount: meta.TotalCount,
		StartIndex: meta.StartIndex,
		EndIndex:   meta.EndIndex,
		HasPrev:    meta.HasPrevious,
		HasNext:    meta.HasNext,
	}
	if p.HasPrev {
		p.PrevURL = buildPageURL(opts.BasePath, q, page-1)
	}
	if p.HasNext {
		p.NextURL = buildPageURL(opts.BasePath, q, page+1)
	}
	if meta.TotalPages > 0 {
		p.Links = pageLinks(listing.ResolveWindow(meta, maxVisible), page, func(n int) string {
			return buildPageURL(opts.BasePath, q, n)
		})
		// The backend's window is sized for desktop; the mobile one is always derived.
		p.MobileLinks = pageLinks(listing.Window(page, meta.TotalPages, maxMobile), page, func(n int) string {
			return buildPageURL(opts.BasePath, q, n)
		})
	}
	return p
}

func pageLinks(entries []model.PageEntry, current int, urlFor func(int) string) []viewmodel.PageLink {
	links := make([]viewmodel.PageLink, 0, len(entries))
	for _, e := range entries {
		if e.IsEllipsis {
			links = append(links, viewmodel.PageLink{IsEllipsis: true})
			continue
		}
		links = append(links, viewmodel.PageLink{
			Number:    e.Number,
			URL:       urlFor(e.Number),
			IsCurrent: e.Number == current,
		})
	}
	return links
}

// buildPageURL returns a URL with page set, preserving other query params.
// basePath should be the path without query string (e.g., "/users", "/payments").
// Whitespace-only values and htmx bookkeeping params are dropped.
func buildPageURL(basePath string, q url.Values, page int) string {
	qq := make(url.Values, len(q))
	for k, v := range q {
		if strings.HasPrefix(k, "hx-") || strings.HasPrefix(k, "hx_") {
			continue
		}
		tmp := make([]string, 0, len(v))
		for _, s := range v {
			if strings.TrimSpace(s) != "" {
				tmp = append(tmp, s)
			}
		}
		if len(tmp) > 0 {
			qq[k] = tmp
		}
	}
	qq.Set("page", strconv.Itoa(page))
	return basePath + "?" + qq.Encode()
}
