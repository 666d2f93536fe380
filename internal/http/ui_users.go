package httpx

import (
	"net/http"
	"strconv"

	"github.com/target/subscription-admin/internal/domain/listing"
	"github.com/target/subscription-admin/internal/domain/model"
	"github.com/target/subscription-admin/internal/service"
)

const usersPath = "/users"

// Users serves the users list, HTMX-aware.
// GET /users?page=N&filter=all|free|subscribers.
func (h *UIHandlers) Users(w http.ResponseWriter, r *http.Request) {
	filter := model.ParseUserFilter(r.URL.Query().Get("filter"))
	HandleList(h, w, r, h.usersView(getPage(r.URL.Query()), filter))
}

func (h *UIHandlers) usersView(page int, filter model.UserFilter) ListView[model.User, model.UserFilter] {
	return ListView[model.User, model.UserFilter]{
		List:         h.UserSvc.NewList(page, filter),
		BasePath:     usersPath,
		Query:        listQuery("filter", string(filter)),
		PageMeta:     pageMeta("Users", PageUsers),
		ItemsKey:     "Users",
		ErrorMessage: "Unable to load users.",
		Enrich: func(b *TemplateDataBuilder, st listing.State[model.User, model.UserFilter]) {
			b.With("Filter", string(filter)).
				With("FilterTabs", filterTabs(usersPath, "filter", model.UserFilters(), filter, st.Counts)).
				With("ListPage", st.Requested.Page)
		},
	}
}

// userListContext reads the page and filter a user mutation was issued from.
func userListContext(r *http.Request) (int, model.UserFilter) {
	return listPage(r), model.ParseUserFilter(listParam(r, "filter"))
}

func userMatch(id string) func(model.User) bool {
	return func(u model.User) bool { return u.ID.String() == id }
}

// findUser loads the list the action was opened from and looks the user up on it.
// ok is false when the response has already been written.
func (h *UIHandlers) findUser(w http.ResponseWriter, r *http.Request, list *service.UserList, id string) (model.User, bool) {
	if err := list.Load(r.Context()); err != nil {
		h.renderServiceError(w, r, err)
		return model.User{}, false
	}
	user, found := service.FindItem(list, userMatch(id))
	if !found {
		h.renderBrowserNotFound(w, r)
		return model.User{}, false
	}
	return user, true
}

// UserToggleConfirm asks before enabling or disabling an account.
// GET /users/{id}/toggle?page=N&filter=F.
func (h *UIHandlers) UserToggleConfirm(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	page, filter := userListContext(r)
	user, ok := h.findUser(w, r, h.UserSvc.NewList(page, filter), id)
	if !ok {
		return
	}
	h.renderConfirm(w, r, pageMeta("Confirm", PageUserConfirm), userToggleDialog(user, !user.IsDisabled, page, filter), nil)
}

// UserToggle applies the target status carried by the form. Submitting twice leaves the same status.
// POST /users/{id}/toggle.
func (h *UIHandlers) UserToggle(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	page, filter := userListContext(r)
	disabled := r.PostFormValue("disabled") == StrTrue
	view := h.usersView(page, filter)
	if err := view.List.Load(r.Context()); err != nil && h.handleBackendFailure(w, r, err) {
		return
	}

	err := h.UserSvc.SetDisabled(r.Context(), view.List, id, disabled)
	if mutationFailed(view.List, err) {
		user, _ := service.FindItem(view.List, userMatch(id))
		user.ID = model.ID(id)
		h.renderConfirm(w, r, pageMeta("Confirm", PageUserConfirm), userToggleDialog(user, disabled, page, filter), err)
		return
	}

	msg := "User enabled."
	if disabled {
		msg = "User disabled."
	}
	finishMutation(h, w, r, view, msg)
}

// UserDeleteConfirm asks before deleting an account.
// GET /users/{id}/delete?page=N&filter=F.
func (h *UIHandlers) UserDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	page, filter := userListContext(r)
	user, ok := h.findUser(w, r, h.UserSvc.NewList(page, filter), id)
	if !ok {
		return
	}
	h.renderConfirm(w, r, pageMeta("Delete user", PageUserConfirm), userDeleteDialog(user, page, filter), nil)
}

// UserDelete deletes an account. Deleting the only user on a later page steps back one page.
// POST /users/{id}/delete.
func (h *UIHandlers) UserDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	page, filter := userListContext(r)
	view := h.usersView(page, filter)
	if err := view.List.Load(r.Context()); err != nil && h.handleBackendFailure(w, r, err) {
		return
	}
	user, _ := service.FindItem(view.List, userMatch(id))
	user.ID = model.ID(id)

	err := h.UserSvc.Delete(r.Context(), view.List, id)
	if mutationFailed(view.List, err) {
		h.renderConfirm(w, r, pageMeta("Delete user", PageUserConfirm), userDeleteDialog(user, page, filter), err)
		return
	}
	finishMutation(h, w, r, view, "User deleted.")
}

func userSubject(u model.User) string {
	switch {
	case u.User.Name != "" && u.Email != "":
		return u.User.Name + " (" + u.Email + ")"
	case u.Email != "":
		return u.Email
	default:
		return "user " + u.ID.String()
	}
}

func userToggleDialog(u model.User, disabled bool, page int, filter model.UserFilter) ConfirmDialog {
	dlg := ConfirmDialog{
		Subject:   userSubject(u),
		ActionURL: usersPath + "/" + u.ID.String() + "/toggle",
		CancelURL: buildPageURL(usersPath, listQuery("filter", string(filter)), page),
		Hidden: append(listContextFields(page, "filter", string(filter)),
			HiddenField{Name: "disabled", Value: strconv.FormatBool(disabled)}),
	}
	if disabled {
		dlg.Title = "Disable user"
		dlg.Message = "The user will no longer be able to sign in."
		dlg.SubmitLabel = "Disable"
		dlg.Danger = true
		dlg.Irreversible = true
		return dlg
	}
	dlg.Title = "Enable user"
	dlg.Message = "The user will be able to sign in again."
	dlg.SubmitLabel = "Enable"
	return dlg
}

func userDeleteDialog(u model.User, page int, filter model.UserFilter) ConfirmDialog {
	return ConfirmDialog{
		Title:        "Delete user",
		Message:      "The account and its data will be removed permanently.",
		Subject:      userSubject(u),
		Irreversible: true,
		Danger:       true,
		ActionURL:    usersPath + "/" + u.ID.String() + "/delete",
		SubmitLabel:  "Delete",
		CancelURL:    buildPageURL(usersPath, listQuery("filter", string(filter)), page),
		Hidden:       listContextFields(page, "filter", string(filter)),
	}
}
