package httpx

import (
	"net/http"
	"strconv"
)

// irreversibleNotice is shown on every destructive confirmation.
const irreversibleNotice = "This action cannot be undone."

// HiddenField is carried through a confirmation form unchanged (list page, filter).
type HiddenField struct {
	Name  string
	Value string
}

// ConfirmDialog describes a confirmation step in front of a mutation.
type ConfirmDialog struct {
	Title   string
	Message string
	// Subject names the item affected, e.g. an email or plan name.
	Subject      string
	Irreversible bool
	Danger       bool
	ActionURL    string
	SubmitLabel  string
	CancelURL    string
	Hidden       []HiddenField
	// Items lists the members of a bulk action.
	Items []string
}

// Notice returns the warning to show under the message, if any.
func (d ConfirmDialog) Notice() string {
	if d.Irreversible {
		return irreversibleNotice
	}
	return ""
}

// listContextFields returns the hidden fields that bring a mutation back to the page it was issued from.
func listContextFields(page int, pairs ...string) []HiddenField {
	fields := []HiddenField{{Name: "page", Value: strconv.Itoa(page)}}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			fields = append(fields, HiddenField{Name: pairs[i], Value: pairs[i+1]})
		}
	}
	return fields
}

// renderConfirm renders a confirmation page. A non-nil err is shown in the dialog's own error slot
// so the administrator can retry or cancel.
func (h *UIHandlers) renderConfirm(w http.ResponseWriter, r *http.Request, meta PageMeta, dlg ConfirmDialog, err error) {
	if err != nil && h.handleBackendFailure(w, r, err) {
		return
	}
	if err != nil && wantsJSON(r) {
		WriteAppError(w, err)
		return
	}

	builder := NewTemplateData(r, meta).With("Confirm", dlg)
	if err != nil {
		h.logger().WarnContext(r.Context(), "confirmed action failed", "path", r.URL.Path, "error", err)
		builder.WithError(processError(err, nil))
		if IsHTMX(r) {
			triggerToast(w, processError(err, nil), "error")
		}
	}
	h.renderDashboardPage(w, r, builder.Build())
}
