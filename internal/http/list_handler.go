package httpx

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/target/subscription-admin/internal/domain/listing"
)

// DataEnricher adds resource-specific data (filter tabs, option lists) to a rendered list.
type DataEnricher[T any, F comparable] func(builder *TemplateDataBuilder, st listing.State[T, F])

// ListView describes how one list resource is rendered.
// T is the item type and F the filter type of its controller.
type ListView[T any, F comparable] struct {
	// List owns page, filter, items and pagination for this request (required).
	List *listing.Controller[T, F]
	// BasePath is the base URL path for pagination links (e.g., "/users", "/payments").
	BasePath string
	// Query carries the list's identifying params (filter, status) into every page link.
	// Nil falls back to the request's query string.
	Query url.Values
	// PageMeta contains page metadata for rendering.
	PageMeta PageMeta
	// ItemsKey is the template data key for the items (e.g., "Users", "Plans").
	ItemsKey string
	// ErrorMessage replaces the fetch error's own message in the banner. Optional.
	ErrorMessage string
	// Enrich is an optional hook that runs after the standard data is in place.
	Enrich DataEnricher[T, F]
}

// pageURL returns the address of page n of this list.
func (v ListView[T, F]) pageURL(n int) string {
	return buildPageURL(v.BasePath, v.Query, n)
}

// HandleList loads the list (unless already loaded) and renders it.
// A failed fetch is shown as a banner above whatever items the list still holds;
// a rejected token ends the session instead.
//
// Usage example:
//
//	HandleList(h, w, r, ListView[model.Payment, model.PaymentStatus]{
//	    List:     h.PaymentSvc.NewList(getPage(q), status),
//	    BasePath: "/payments",
//	    PageMeta: pageMeta("Payments", PagePayments),
//	    ItemsKey: "Payments",
//	})
func HandleList[T any, F comparable](h *UIHandlers, w http.ResponseWriter, r *http.Request, v ListView[T, F]) {
	if h == nil || v.List == nil {
		http.Error(w, "Internal configuration error", http.StatusInternalServerError)
		return
	}
	if v.List.State().Status == listing.StatusIdle {
		if err := v.List.Load(r.Context()); err != nil && h.handleBackendFailure(w, r, err) {
			return
		}
	}
	renderList(h, w, r, v)
}

// renderList renders the controller's current snapshot. Items and pagination always come from the same fetch.
func renderList[T any, F comparable](h *UIHandlers, w http.ResponseWriter, r *http.Request, v ListView[T, F]) {
	st := v.List.State()
	builder := NewTemplateData(r, v.PageMeta).
		WithPagination(PaginationData{
			Meta:             st.Meta,
			BasePath:         v.BasePath,
			Query:            v.Query,
			MaxVisible:       h.MaxVisible,
			MaxVisibleMobile: h.MaxVisibleMobile,
		}).
		With(v.ItemsKey, st.Items).
		With("Counts", st.Counts).
		With("ListStatus", string(st.Status))

	if st.Status == listing.StatusErrored {
		msg := v.ErrorMessage
		if msg == "" {
			msg = processError(st.Err, nil)
		}
		builder.WithError(msg)
	}
	if v.Enrich != nil {
		v.Enrich(builder, st)
	}
	h.renderDashboardPage(w, r, builder.Build())
}

// mutationFailed reports whether err came from the mutation itself. Services refetch after a
// successful mutation; when only that refetch failed the list is left errored and the failure
// is shown on the re-rendered list instead.
func mutationFailed[T any, F comparable](list *listing.Controller[T, F], err error) bool {
	if err == nil {
		return false
	}
	st := list.State()
	return st.Status != listing.StatusErrored || st.Err == nil || !errors.Is(err, st.Err)
}

// mutationError returns err only when the mutation itself failed; see mutationFailed.
func mutationError[T any, F comparable](list *listing.Controller[T, F], err error) error {
	if mutationFailed(list, err) {
		return err
	}
	return nil
}

// finishMutation answers a successful mutation from the list's reconciled state.
// htmx gets the re-rendered list, its URL and a toast; plain browsers are redirected to the list page.
func finishMutation[T any, F comparable](h *UIHandlers, w http.ResponseWriter, r *http.Request, v ListView[T, F], message string) {
	st := v.List.State()
	if st.Status == listing.StatusErrored && h.handleBackendFailure(w, r, st.Err) {
		return
	}
	target := v.pageURL(st.Requested.Page)

	switch {
	case wantsJSON(r):
		WriteJSON(w, http.StatusOK, map[string]any{"message": message, "location": target})
	case IsHTMX(r):
		HTMX(w).PushURL(target).Toast(message, "success")
		renderList(h, w, r, v)
	default:
		http.Redirect(w, r, target, http.StatusSeeOther)
	}
}

// listQuery builds the identifying params of a list, dropping empty values.
func listQuery(pairs ...string) url.Values {
	q := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			q.Set(pairs[i], pairs[i+1])
		}
	}
	return q
}
