package httpx

import (
	"context"
	"net/http"
	"net/url"

	"github.com/target/subscription-admin/internal/domain/listing"
	"github.com/target/subscription-admin/internal/domain/model"
	"github.com/target/subscription-admin/internal/service"
)

const administratorsPath = "/administrators"

// Administrators serves the administrators list.
// GET /administrators?page=N.
func (h *UIHandlers) Administrators(w http.ResponseWriter, r *http.Request) {
	HandleList(h, w, r, h.administratorsView(getPage(r.URL.Query())))
}

func (h *UIHandlers) administratorsView(page int) ListView[model.Administrator, listing.NoFilter] {
	return ListView[model.Administrator, listing.NoFilter]{
		List:         h.AdminSvc.NewList(page),
		BasePath:     administratorsPath,
		Query:        url.Values{},
		PageMeta:     pageMeta("Administrators", PageAdministrators),
		ItemsKey:     "Administrators",
		ErrorMessage: "Unable to load administrators.",
		Enrich: func(b *TemplateDataBuilder, st listing.State[model.Administrator, listing.NoFilter]) {
			b.With("ListPage", st.Requested.Page)
		},
	}
}

func (h *UIHandlers) renderAdministratorForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data, _ = prepareFormFrame(FormFrameOpts{
		R:           r,
		Data:        data,
		DefaultMode: FormModeCreate,
		MetaForMode: func(mode FormMode) PageMeta {
			if mode == FormModeEdit {
				return pageMeta("Edit Administrator", PageAdministratorForm)
			}
			return pageMeta("New Administrator", PageAdministratorForm)
		},
	})
	data["AccessLevels"] = model.AccessLevels()
	h.renderDashboardPage(w, r, data)
}

// administratorFormData returns the shared extras of the administrator form.
func administratorFormData(actionURL string, page int) map[string]any {
	return map[string]any{
		"ActionURL": actionURL,
		"ListPage":  page,
		"CancelURL": buildPageURL(administratorsPath, url.Values{}, page),
	}
}

// AdministratorNew renders the create form.
// GET /administrators/new?page=N.
func (h *UIHandlers) AdministratorNew(w http.ResponseWriter, r *http.Request) {
	data := administratorFormData(administratorsPath, getPage(r.URL.Query()))
	data["Mode"] = FormModeCreate
	data["FormData"] = model.CreateAdministratorRequest{AccessLevel: model.AccessLevelAdmin}
	h.renderAdministratorForm(w, r, data)
}

// AdministratorCreate creates an administrator and refetches the page it was created from.
// POST /administrators.
func (h *UIHandlers) AdministratorCreate(w http.ResponseWriter, r *http.Request) {
	view := h.administratorsView(listPage(r))
	HandleForm(FormHandlerOpts[model.CreateAdministratorRequest]{
		H:      h,
		W:      w,
		R:      r,
		Mode:   FormModeCreate,
		Parser: parseCreateAdministratorForm,
		Submit: func(ctx context.Context, req model.CreateAdministratorRequest) error {
			_, err := h.AdminSvc.Create(ctx, view.List, req)
			return mutationError(view.List, err)
		},
		OnSuccess: func(w http.ResponseWriter, r *http.Request) {
			finishMutation(h, w, r, view, "Administrator created.")
		},
		Renderer:  h.renderAdministratorForm,
		PageMeta:  pageMeta("New Administrator", PageAdministratorForm),
		ExtraData: administratorFormData(administratorsPath, view.List.State().Requested.Page),
	})
}

// findAdministrator loads the list the action was opened from and looks the administrator up on it.
// ok is false when the response has already been written.
func (h *UIHandlers) findAdministrator(
	w http.ResponseWriter,
	r *http.Request,
	list *service.AdministratorList,
	id string,
) (model.Administrator, bool) {
	if err := list.Load(r.Context()); err != nil {
		h.renderServiceError(w, r, err)
		return model.Administrator{}, false
	}
	admin, found := service.FindItem(list, h.AdminSvc.ByID(id))
	if !found {
		h.renderBrowserNotFound(w, r)
		return model.Administrator{}, false
	}
	return admin, true
}

// AdministratorEdit renders the edit form prefilled from the list entry.
// GET /administrators/{id}/edit?page=N.
func (h *UIHandlers) AdministratorEdit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	page := getPage(r.URL.Query())
	admin, ok := h.findAdministrator(w, r, h.AdminSvc.NewList(page), id)
	if !ok {
		return
	}
	data := administratorFormData(administratorsPath+"/"+id, page)
	data["Mode"] = FormModeEdit
	data["Administrator"] = admin
	data["FormData"] = model.UpdateAdministratorRequest{
		Name:          admin.Name,
		Email:         admin.Email,
		ContactNumber: admin.Phone,
		AccessLevel:   model.AccessLevel(admin.AccessLevel),
	}
	h.renderAdministratorForm(w, r, data)
}

// AdministratorUpdate saves the edit form and patches the entry in place.
// POST /administrators/{id}.
func (h *UIHandlers) AdministratorUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	view := h.administratorsView(listPage(r))
	if err := view.List.Load(r.Context()); err != nil && h.handleBackendFailure(w, r, err) {
		return
	}
	extra := administratorFormData(administratorsPath+"/"+id, view.List.State().Requested.Page)
	if admin, found := service.FindItem(view.List, h.AdminSvc.ByID(id)); found {
		extra["Administrator"] = admin
	}
	HandleForm(FormHandlerOpts[model.UpdateAdministratorRequest]{
		H:      h,
		W:      w,
		R:      r,
		Mode:   FormModeEdit,
		Parser: parseUpdateAdministratorForm,
		Submit: func(ctx context.Context, req model.UpdateAdministratorRequest) error {
			return h.AdminSvc.Update(ctx, view.List, id, req)
		},
		OnSuccess: func(w http.ResponseWriter, r *http.Request) {
			finishMutation(h, w, r, view, "Administrator updated.")
		},
		Renderer:  h.renderAdministratorForm,
		PageMeta:  pageMeta("Edit Administrator", PageAdministratorForm),
		ExtraData: extra,
	})
}

// AdministratorDeleteConfirm asks before removing an administrator.
// GET /administrators/{id}/delete?page=N.
func (h *UIHandlers) AdministratorDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	page := getPage(r.URL.Query())
	admin, ok := h.findAdministrator(w, r, h.AdminSvc.NewList(page), id)
	if !ok {
		return
	}
	h.renderConfirm(w, r, pageMeta("Delete administrator", PageAdministratorConfirm), administratorDeleteDialog(admin, page), nil)
}

// AdministratorDelete removes an administrator. Deleting the only entry on a later page steps back one page.
// POST /administrators/{id}/delete.
func (h *UIHandlers) AdministratorDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	page := listPage(r)
	view := h.administratorsView(page)
	if err := view.List.Load(r.Context()); err != nil && h.handleBackendFailure(w, r, err) {
		return
	}
	admin, _ := service.FindItem(view.List, h.AdminSvc.ByID(id))
	admin.ID = model.ID(id)

	err := h.AdminSvc.Delete(r.Context(), view.List, id)
	if mutationFailed(view.List, err) {
		h.renderConfirm(w, r, pageMeta("Delete administrator", PageAdministratorConfirm), administratorDeleteDialog(admin, page), err)
		return
	}
	finishMutation(h, w, r, view, "Administrator deleted.")
}

func administratorDeleteDialog(a model.Administrator, page int) ConfirmDialog {
	subject := a.Email
	if a.Name != "" {
		subject = a.Name + " (" + a.Email + ")"
	}
	if subject == "" {
		subject = "administrator " + a.ID.String()
	}
	return ConfirmDialog{
		Title:        "Delete administrator",
		Message:      "This administrator will lose access to the dashboard.",
		Subject:      subject,
		Irreversible: true,
		Danger:       true,
		ActionURL:    administratorsPath + "/" + a.ID.String() + "/delete",
		SubmitLabel:  "Delete",
		CancelURL:    buildPageURL(administratorsPath, url.Values{}, page),
		Hidden:       listContextFields(page),
	}
}

func parseCreateAdministratorForm(form url.Values) (model.CreateAdministratorRequest, map[string]string) {
	return model.CreateAdministratorRequest{
		Name:          formValue(form, "name"),
		Email:         formValue(form, "email"),
		ContactNumber: formValue(form, "contact_number"),
		AccessLevel:   model.AccessLevel(formValue(form, "access_level")),
		Password:      form.Get("password"),
	}, nil
}

func parseUpdateAdministratorForm(form url.Values) (model.UpdateAdministratorRequest, map[string]string) {
	return model.UpdateAdministratorRequest{
		Name:          formValue(form, "name"),
		Email:         formValue(form, "email"),
		ContactNumber: formValue(form, "contact_number"),
		AccessLevel:   model.AccessLevel(formValue(form, "access_level")),
	}, nil
}
