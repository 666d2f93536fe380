package httpx

import (
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/target/subscription-admin/internal/domain/listing"
	"github.com/target/subscription-admin/internal/domain/model"
	apperrors "github.com/target/subscription-admin/internal/errors"
)

const (
	subscriptionsPath = "/subscriptions"
	customersPath     = "/customers"
)

// Subscriptions serves the subscription stats, the growth chart and the subscriptions list.
// The three reads run concurrently; stats and chart failures only blank their own panel.
// GET /subscriptions?page=N&months=M.
func (h *UIHandlers) Subscriptions(w http.ResponseWriter, r *http.Request) {
	months := model.ClampChartMonths(parseIntQuery(r, "months", model.DefaultChartMonths))
	list := h.SubscriptionSvc.NewSubscriptionList(getPage(r.URL.Query()))

	var (
		stats              *model.SubscriptionDashboardResponse
		chart              *model.SubscriptionChartResponse
		statsErr, chartErr error
	)
	ctx := r.Context()
	var g errgroup.Group
	g.Go(func() error {
		stats, statsErr = h.SubscriptionSvc.Stats(ctx)
		return nil
	})
	g.Go(func() error {
		chart, chartErr = h.SubscriptionSvc.Chart(ctx, months)
		return nil
	})
	g.Go(func() error {
		// Load records its failure on the list; it is rendered as the list banner.
		_ = list.Load(ctx)
		return nil
	})
	_ = g.Wait()

	if st := list.State(); st.Status == listing.StatusErrored && h.handleBackendFailure(w, r, st.Err) {
		return
	}
	for _, err := range []error{statsErr, chartErr} {
		if err != nil && h.handleBackendFailure(w, r, err) {
			return
		}
	}

	HandleList(h, w, r, ListView[model.Subscription, listing.NoFilter]{
		List:         list,
		BasePath:     subscriptionsPath,
		Query:        listQuery("months", monthsParam(months)),
		PageMeta:     pageMeta("Subscriptions", PageSubscriptions),
		ItemsKey:     "Subscriptions",
		ErrorMessage: "Unable to load subscriptions.",
		Enrich: func(b *TemplateDataBuilder, _ listing.State[model.Subscription, listing.NoFilter]) {
			b.With("Stats", stats).
				With("Chart", chart).
				With("ChartMonths", months).
				With("MonthOptions", chartMonthOptions()).
				With("SectionErrors", sectionErrors(map[string]error{"stats": statsErr, "chart": chartErr}))
		},
	})
}

// Customers serves the payment-processor customers list.
// GET /customers?page=N.
func (h *UIHandlers) Customers(w http.ResponseWriter, r *http.Request) {
	HandleList(h, w, r, ListView[model.Customer, listing.NoFilter]{
		List:         h.SubscriptionSvc.NewCustomerList(getPage(r.URL.Query())),
		BasePath:     customersPath,
		PageMeta:     pageMeta("Customers", PageCustomers),
		ItemsKey:     "Customers",
		ErrorMessage: "Unable to load customers.",
	})
}

// monthsParam keeps the default range out of page links.
func monthsParam(months int) string {
	if months == model.DefaultChartMonths {
		return ""
	}
	return strconv.Itoa(months)
}

// sectionErrors maps each failed panel to the notice shown in its place.
func sectionErrors(errs map[string]error) map[string]string {
	out := map[string]string{}
	for section, err := range errs {
		switch {
		case err == nil:
		case apperrors.GetCode(err) == "":
			out[section] = errMsgSectionUnavailable
		default:
			out[section] = apperrors.UserMessage(err)
		}
	}
	return out
}
