package httpx

import (
	"context"
	"net/http"
	"net/url"

	"github.com/target/subscription-admin/internal/domain/listing"
	"github.com/target/subscription-admin/internal/domain/model"
	"github.com/target/subscription-admin/internal/service"
)

const apiKeysPath = "/api-keys"

// APIKeys serves the third-party credentials grouped by category.
// GET /api-keys.
func (h *UIHandlers) APIKeys(w http.ResponseWriter, r *http.Request) {
	HandleList(h, w, r, h.apiKeysView())
}

func (h *UIHandlers) apiKeysView() ListView[model.APIKey, listing.NoFilter] {
	return ListView[model.APIKey, listing.NoFilter]{
		List:         h.APIKeySvc.NewList(),
		BasePath:     apiKeysPath,
		Query:        url.Values{},
		PageMeta:     pageMeta("API Keys", PageAPIKeys),
		ItemsKey:     "APIKeys",
		ErrorMessage: "Unable to load API keys.",
		Enrich: func(b *TemplateDataBuilder, st listing.State[model.APIKey, listing.NoFilter]) {
			b.With("Groups", service.GroupAPIKeys(st.Items))
		},
	}
}

func (h *UIHandlers) renderAPIKeyForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data, _ = prepareFormFrame(FormFrameOpts{
		R:           r,
		Data:        data,
		DefaultMode: FormModeEdit,
		MetaForMode: func(FormMode) PageMeta { return pageMeta("Edit API Key", PageAPIKeyForm) },
	})
	h.renderDashboardPage(w, r, data)
}

func apiKeyFormData(k model.APIKey) map[string]any {
	return map[string]any{
		"ActionURL": apiKeysPath + "/" + url.PathEscape(k.Key),
		"CancelURL": apiKeysPath,
		"APIKey":    k,
	}
}

// APIKeyEdit renders the value form. Masked secrets are never pre-filled.
// GET /api-keys/{key}/edit.
func (h *UIHandlers) APIKeyEdit(w http.ResponseWriter, r *http.Request) {
	list := h.APIKeySvc.NewList()
	if err := list.Load(r.Context()); err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	key, found := service.FindItem(list, h.APIKeySvc.ByKey(r.PathValue("key")))
	if !found {
		h.renderBrowserNotFound(w, r)
		return
	}
	data := apiKeyFormData(key)
	data["Mode"] = FormModeEdit
	data["FormData"] = model.UpdateAPIKeyRequest{Value: key.EditableValue()}
	h.renderAPIKeyForm(w, r, data)
}

// APIKeyUpdate stores a new value and patches the row with the backend's masked echo.
// POST /api-keys/{key}.
func (h *UIHandlers) APIKeyUpdate(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("key")
	view := h.apiKeysView()
	if err := view.List.Load(r.Context()); err != nil && h.handleBackendFailure(w, r, err) {
		return
	}
	current, found := service.FindItem(view.List, h.APIKeySvc.ByKey(name))
	if !found {
		current = model.APIKey{Key: name}
	}
	if current.Label == "" {
		current.Label = current.Key
	}

	HandleForm(FormHandlerOpts[model.UpdateAPIKeyRequest]{
		H:      h,
		W:      w,
		R:      r,
		Mode:   FormModeEdit,
		Parser: parseAPIKeyForm,
		Submit: func(ctx context.Context, req model.UpdateAPIKeyRequest) error {
			return h.APIKeySvc.Update(ctx, view.List, name, req)
		},
		OnSuccess: func(w http.ResponseWriter, r *http.Request) {
			finishMutation(h, w, r, view, current.Label+" updated.")
		},
		Renderer:  h.renderAPIKeyForm,
		PageMeta:  pageMeta("Edit API Key", PageAPIKeyForm),
		ExtraData: apiKeyFormData(current),
	})
}

func parseAPIKeyForm(form url.Values) (model.UpdateAPIKeyRequest, map[string]string) {
	return model.UpdateAPIKeyRequest{Value: formValue(form, "value")}, nil
}
