package httpx

import (
	"net/http"

	"github.com/target/subscription-admin/internal/domain/model"
	apperrors "github.com/target/subscription-admin/internal/errors"
)

const errMsgSectionUnavailable = "This section is temporarily unavailable."

// Index serves the home page: overview counters, subscription stats and the growth chart.
// Sections load concurrently; a section that failed shows its own notice.
// GET /?months=<1..24>.
func (h *UIHandlers) Index(w http.ResponseWriter, r *http.Request) {
	months := model.ClampChartMonths(parseIntQuery(r, "months", model.DefaultChartMonths))
	dash, err := h.DashboardSvc.Load(r.Context(), months)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	for _, sectionErr := range []error{dash.OverviewErr, dash.StatsErr, dash.ChartErr} {
		if apperrors.IsUnauthorized(sectionErr) && h.handleBackendFailure(w, r, sectionErr) {
			return
		}
	}

	data := NewTemplateData(r, pageMeta("Dashboard", PageDashboard)).
		With("Dashboard", dash).
		With("Overview", dash.Overview).
		With("Stats", dash.Stats).
		With("Chart", dash.Chart).
		With("ChartMonths", dash.ChartMonths).
		With("MonthOptions", chartMonthOptions()).
		With("SectionErrors", sectionErrors(map[string]error{
			"overview": dash.OverviewErr,
			"stats":    dash.StatsErr,
			"chart":    dash.ChartErr,
		})).
		Build()
	h.renderDashboardPage(w, r, data)
}

// chartMonthOptions lists the ranges offered above the growth chart.
func chartMonthOptions() []int {
	return []int{3, model.DefaultChartMonths, 12, model.MaxChartMonths}
}
