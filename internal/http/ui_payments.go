package httpx

import (
	"net/http"

	"github.com/target/subscription-admin/internal/domain/listing"
	"github.com/target/subscription-admin/internal/domain/model"
)

const paymentsPath = "/payments"

// Payments serves the payments list with its status tabs.
// GET /payments?page=N&status=all|succeeded|pending|failed.
func (h *UIHandlers) Payments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	status := model.ParsePaymentStatus(q.Get("status"))
	HandleList(h, w, r, ListView[model.Payment, model.PaymentStatus]{
		List:         h.PaymentSvc.NewList(getPage(q), status),
		BasePath:     paymentsPath,
		Query:        listQuery("status", string(status)),
		PageMeta:     pageMeta("Payments", PagePayments),
		ItemsKey:     "Payments",
		ErrorMessage: "Unable to load payments.",
		Enrich: func(b *TemplateDataBuilder, st listing.State[model.Payment, model.PaymentStatus]) {
			b.With("Status", string(status)).
				With("FilterTabs", filterTabs(paymentsPath, "status", model.PaymentStatuses(), status, st.Counts))
		},
	})
}
