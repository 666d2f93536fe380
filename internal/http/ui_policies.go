package httpx

import (
	"context"
	"html/template"
	"net/http"
	"net/url"

	"github.com/guregu/null/v6"

	"github.com/target/subscription-admin/internal/domain/model"
)

const policiesPath = "/policies"

// policyKind resolves the {kind} path segment; unknown kinds are answered with 404.
func (h *UIHandlers) policyKind(w http.ResponseWriter, r *http.Request) (model.PolicyKind, bool) {
	kind, ok := model.ParsePolicyKind(r.PathValue("kind"))
	if !ok {
		h.NotFound(w, r)
	}
	return kind, ok
}

func policyURL(kind model.PolicyKind) string { return policiesPath + "/" + string(kind) }

// Policy renders a legal document. Its HTML was sanitized when it was read.
// GET /policies/{kind}.
func (h *UIHandlers) Policy(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.policyKind(w, r)
	if !ok {
		return
	}
	policy, err := h.PolicySvc.Get(r.Context(), kind)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	h.renderDashboardPage(w, r, policyPageData(r, kind, policy))
}

func policyPageData(r *http.Request, kind model.PolicyKind, policy model.Policy) map[string]any {
	return NewTemplateData(r, pageMeta(kind.Title(), PagePolicy)).
		With("Kind", string(kind)).
		With("Kinds", policyTabs(kind)).
		With("Policy", policy).
		With("Content", template.HTML(policy.Content)). //nolint:gosec // sanitized by the policy service
		With("EditURL", policyURL(kind)+"/edit").
		Build()
}

// policyTabs links both documents from either page.
func policyTabs(current model.PolicyKind) []FilterTab {
	kinds := []model.PolicyKind{model.PolicyPrivacy, model.PolicyTerms}
	tabs := make([]FilterTab, 0, len(kinds))
	for _, k := range kinds {
		tabs = append(tabs, FilterTab{Label: k.Title(), Value: string(k), URL: policyURL(k), Active: k == current})
	}
	return tabs
}

func (h *UIHandlers) renderPolicyForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data, _ = prepareFormFrame(FormFrameOpts{
		R:           r,
		Data:        data,
		DefaultMode: FormModeEdit,
		MetaForMode: func(FormMode) PageMeta { return pageMeta("Edit Policy", PagePolicyForm) },
	})
	h.renderDashboardPage(w, r, data)
}

func policyFormData(kind model.PolicyKind) map[string]any {
	return map[string]any{
		"Kind":      string(kind),
		"KindTitle": kind.Title(),
		"ActionURL": policyURL(kind),
		"CancelURL": policyURL(kind),
	}
}

// PolicyEdit renders the document editor.
// GET /policies/{kind}/edit.
func (h *UIHandlers) PolicyEdit(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.policyKind(w, r)
	if !ok {
		return
	}
	policy, err := h.PolicySvc.Get(r.Context(), kind)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	data := policyFormData(kind)
	data["Policy"] = policy
	data["FormData"] = model.UpdatePolicyRequest{
		Title:         null.StringFrom(policy.Title),
		Content:       null.StringFrom(policy.Content),
		Version:       null.StringFrom(policy.Version),
		EffectiveDate: null.StringFrom(policy.EffectiveDate),
		IsActive:      null.BoolFrom(policy.IsActive),
	}
	h.renderPolicyForm(w, r, data)
}

// PolicyUpdate saves the edited document and returns to its page.
// POST /policies/{kind}.
func (h *UIHandlers) PolicyUpdate(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.policyKind(w, r)
	if !ok {
		return
	}
	var saved model.Policy
	HandleForm(FormHandlerOpts[model.UpdatePolicyRequest]{
		H:      h,
		W:      w,
		R:      r,
		Mode:   FormModeEdit,
		Parser: parsePolicyForm,
		Submit: func(ctx context.Context, req model.UpdatePolicyRequest) error {
			var err error
			saved, err = h.PolicySvc.Update(ctx, kind, req)
			return err
		},
		OnSuccess: func(w http.ResponseWriter, r *http.Request) {
			msg := kind.Title() + " updated."
			switch {
			case wantsJSON(r):
				WriteJSON(w, http.StatusOK, map[string]any{"message": msg, "policy": saved})
			case IsHTMX(r):
				HTMX(w).PushURL(policyURL(kind)).Toast(msg, "success")
				h.renderDashboardPage(w, r, policyPageData(r, kind, saved))
			default:
				http.Redirect(w, r, policyURL(kind), http.StatusSeeOther)
			}
		},
		Renderer:  h.renderPolicyForm,
		PageMeta:  pageMeta("Edit Policy", PagePolicyForm),
		ExtraData: policyFormData(kind),
	})
}

// parsePolicyForm maps the editor to a partial update. The active checkbox is always sent.
func parsePolicyForm(form url.Values) (model.UpdatePolicyRequest, map[string]string) {
	return model.UpdatePolicyRequest{
		Title:         optionalString(form, "title"),
		Content:       optionalString(form, "content"),
		Version:       optionalString(form, "version"),
		EffectiveDate: optionalString(form, "effective_date"),
		IsActive:      null.BoolFrom(formBool(form, "is_active")),
	}, nil
}
