package httpx

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/guregu/null/v6"

	"github.com/target/subscription-admin/internal/domain/listing"
	"github.com/target/subscription-admin/internal/domain/model"
	apperrors "github.com/target/subscription-admin/internal/errors"
	"github.com/target/subscription-admin/internal/service"
)

const (
	plansPath = "/plans"

	errMsgSelectPlans = "Select at least one plan."
)

// Plans serves the plans list. The backend returns every plan; pages are cut locally.
// GET /plans?page=N.
func (h *UIHandlers) Plans(w http.ResponseWriter, r *http.Request) {
	HandleList(h, w, r, h.plansView(getPage(r.URL.Query())))
}

func (h *UIHandlers) plansView(page int) ListView[model.Plan, listing.NoFilter] {
	return ListView[model.Plan, listing.NoFilter]{
		List:         h.PlanSvc.NewList(page),
		BasePath:     plansPath,
		Query:        url.Values{},
		PageMeta:     pageMeta("Plans", PagePlans),
		ItemsKey:     "Plans",
		ErrorMessage: "Unable to load plans.",
		Enrich: func(b *TemplateDataBuilder, st listing.State[model.Plan, listing.NoFilter]) {
			b.With("ListPage", st.Requested.Page)
		},
	}
}

// PlanView shows a single plan.
// GET /plans/{id}.
func (h *UIHandlers) PlanView(w http.ResponseWriter, r *http.Request) {
	plan, err := h.PlanSvc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	data := NewTemplateData(r, pageMeta(plan.Name, PagePlanView)).
		With("Plan", plan).
		With("ListPage", getPage(r.URL.Query())).
		Build()
	h.renderDashboardPage(w, r, data)
}

// planForm holds the plan form as entered. Numbers stay text until the form is submitted
// so a typo is shown back exactly as typed.
type planForm struct {
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	Price           string `json:"price"`
	PlanType        string `json:"plan_type"`
	Interval        string `json:"interval"`
	IntervalCount   string `json:"interval_count"`
	TrialPeriodDays string `json:"trial_period_days"`
}

func planFormFrom(p model.Plan) planForm {
	return planForm{
		Name:            p.Name,
		Slug:            p.Slug,
		Price:           p.Price,
		PlanType:        p.PlanType,
		Interval:        p.Interval,
		IntervalCount:   strconv.Itoa(p.IntervalCount),
		TrialPeriodDays: strconv.Itoa(p.TrialPeriodDays),
	}
}

func parsePlanForm(form url.Values) (planForm, map[string]string) {
	return planForm{
		Name:            formValue(form, "name"),
		Slug:            strings.ToLower(formValue(form, "slug")),
		Price:           formValue(form, "price"),
		PlanType:        formValue(form, "plan_type"),
		Interval:        formValue(form, "interval"),
		IntervalCount:   formValue(form, "interval_count"),
		TrialPeriodDays: formValue(form, "trial_period_days"),
	}, nil
}

// values re-reads the form through the shared optional-field parsers.
func (f planForm) values() url.Values {
	return url.Values{
		"name":              {f.Name},
		"slug":              {f.Slug},
		"price":             {f.Price},
		"plan_type":         {f.PlanType},
		"interval":          {f.Interval},
		"interval_count":    {f.IntervalCount},
		"trial_period_days": {f.TrialPeriodDays},
	}
}

// createRequest converts the form into a create payload; malformed numbers are field errors.
func (f planForm) createRequest() (model.CreatePlanRequest, error) {
	errs := fieldErrors{}
	form := f.values()
	price := optionalFloat(form, "price", errs)
	if !price.Valid {
		errs.add("price", "Price is required.")
	}
	req := model.CreatePlanRequest{
		Name:            f.Name,
		Slug:            f.Slug,
		Price:           price.Float64,
		PlanType:        f.PlanType,
		Interval:        optionalString(form, "interval"),
		IntervalCount:   optionalInt32(form, "interval_count", errs),
		TrialPeriodDays: optionalInt32(form, "trial_period_days", errs),
	}
	if len(errs) > 0 {
		return req, apperrors.ValidationFields(errMsgFixBelow, errs)
	}
	return req, nil
}

// updateRequest returns the fields of the form that differ from current.
func (f planForm) updateRequest(current model.Plan) (model.UpdatePlanRequest, error) {
	errs := fieldErrors{}
	form := f.values()
	var req model.UpdatePlanRequest
	if f.Name != current.Name {
		req.Name = null.StringFrom(f.Name)
	}
	if f.Slug != current.Slug {
		req.Slug = null.StringFrom(f.Slug)
	}
	if price := optionalFloat(form, "price", errs); price.Valid {
		if was, err := strconv.ParseFloat(current.Price, 64); err != nil || was != price.Float64 {
			req.Price = price
		}
	}
	if f.PlanType != current.PlanType {
		req.PlanType = null.StringFrom(f.PlanType)
	}
	if f.Interval != "" && f.Interval != current.Interval {
		req.Interval = null.StringFrom(f.Interval)
	}
	if n := optionalInt32(form, "interval_count", errs); n.Valid && int(n.Int32) != current.IntervalCount {
		req.IntervalCount = n
	}
	if n := optionalInt32(form, "trial_period_days", errs); n.Valid && int(n.Int32) != current.TrialPeriodDays {
		req.TrialPeriodDays = n
	}
	if len(errs) > 0 {
		return req, apperrors.ValidationFields(errMsgFixBelow, errs)
	}
	return req, nil
}

func (h *UIHandlers) renderPlanForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data, _ = prepareFormFrame(FormFrameOpts{
		R:           r,
		Data:        data,
		DefaultMode: FormModeCreate,
		MetaForMode: func(mode FormMode) PageMeta {
			if mode == FormModeEdit {
				return pageMeta("Edit Plan", PagePlanForm)
			}
			return pageMeta("New Plan", PagePlanForm)
		},
	})
	data["PlanTypes"] = model.PlanTypes()
	data["Intervals"] = model.PlanIntervals()
	h.renderDashboardPage(w, r, data)
}

func planFormData(actionURL string, page int) map[string]any {
	return map[string]any{
		"ActionURL": actionURL,
		"ListPage":  page,
		"CancelURL": buildPageURL(plansPath, url.Values{}, page),
	}
}

// PlanNew renders the create form.
// GET /plans/new?page=N.
func (h *UIHandlers) PlanNew(w http.ResponseWriter, r *http.Request) {
	data := planFormData(plansPath, getPage(r.URL.Query()))
	data["Mode"] = FormModeCreate
	data["FormData"] = planForm{PlanType: model.PlanTypeRecurring, Interval: model.IntervalMonth, IntervalCount: "1"}
	h.renderPlanForm(w, r, data)
}

// PlanCreate creates a plan and refetches the page it was created from.
// POST /plans.
func (h *UIHandlers) PlanCreate(w http.ResponseWriter, r *http.Request) {
	view := h.plansView(listPage(r))
	HandleForm(FormHandlerOpts[planForm]{
		H:      h,
		W:      w,
		R:      r,
		Mode:   FormModeCreate,
		Parser: parsePlanForm,
		Submit: func(ctx context.Context, f planForm) error {
			req, err := f.createRequest()
			if err != nil {
				return err
			}
			_, err = h.PlanSvc.Create(ctx, view.List, req)
			return mutationError(view.List, err)
		},
		OnSuccess: func(w http.ResponseWriter, r *http.Request) {
			finishMutation(h, w, r, view, "Plan created.")
		},
		Renderer:  h.renderPlanForm,
		PageMeta:  pageMeta("New Plan", PagePlanForm),
		ExtraData: planFormData(plansPath, view.List.State().Requested.Page),
	})
}

// PlanEdit renders the edit form prefilled from the backend.
// GET /plans/{id}/edit?page=N.
func (h *UIHandlers) PlanEdit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	plan, err := h.PlanSvc.Get(r.Context(), id)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	data := planFormData(plansPath+"/"+id, getPage(r.URL.Query()))
	data["Mode"] = FormModeEdit
	data["Plan"] = plan
	data["FormData"] = planFormFrom(plan)
	h.renderPlanForm(w, r, data)
}

// PlanUpdate sends only the fields that changed and patches the row in place.
// POST /plans/{id}.
func (h *UIHandlers) PlanUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	current, err := h.PlanSvc.Get(r.Context(), id)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	view := h.plansView(listPage(r))
	if loadErr := view.List.Load(r.Context()); loadErr != nil && h.handleBackendFailure(w, r, loadErr) {
		return
	}
	extra := planFormData(plansPath+"/"+id, view.List.State().Requested.Page)
	extra["Plan"] = current

	HandleForm(FormHandlerOpts[planForm]{
		H:      h,
		W:      w,
		R:      r,
		Mode:   FormModeEdit,
		Parser: parsePlanForm,
		Submit: func(ctx context.Context, f planForm) error {
			req, err := f.updateRequest(current)
			if err != nil {
				return err
			}
			return h.PlanSvc.Update(ctx, view.List, id, req)
		},
		OnSuccess: func(w http.ResponseWriter, r *http.Request) {
			finishMutation(h, w, r, view, "Plan updated.")
		},
		Renderer:  h.renderPlanForm,
		PageMeta:  pageMeta("Edit Plan", PagePlanForm),
		ExtraData: extra,
	})
}

// PlanDeleteConfirm asks before deleting a plan.
// GET /plans/{id}/delete?page=N.
func (h *UIHandlers) PlanDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	plan, err := h.PlanSvc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	h.renderConfirm(w, r, pageMeta("Delete plan", PagePlanConfirm), planDeleteDialog(plan, getPage(r.URL.Query())), nil)
}

// PlanDelete deletes a plan. Deleting the only plan on a later page steps back one page.
// POST /plans/{id}/delete.
func (h *UIHandlers) PlanDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	page := listPage(r)
	view := h.plansView(page)
	if err := view.List.Load(r.Context()); err != nil && h.handleBackendFailure(w, r, err) {
		return
	}
	plan, _ := service.FindItem(view.List, func(p model.Plan) bool { return p.ID.String() == id })
	plan.ID = model.ID(id)

	err := h.PlanSvc.Delete(r.Context(), view.List, id)
	if mutationFailed(view.List, err) {
		h.renderConfirm(w, r, pageMeta("Delete plan", PagePlanConfirm), planDeleteDialog(plan, page), err)
		return
	}
	finishMutation(h, w, r, view, "Plan deleted.")
}

// PlanSync pushes every plan to the payment processor and refreshes the list.
// POST /plans/sync.
func (h *UIHandlers) PlanSync(w http.ResponseWriter, r *http.Request) {
	view := h.plansView(listPage(r))
	resp, err := h.PlanSvc.Sync(r.Context(), view.List)
	if mutationFailed(view.List, err) {
		h.renderPlansWithError(w, r, view, err)
		return
	}
	finishMutation(h, w, r, view, bulkMessage(resp, "Plans synced."))
}

// PlanBulkDeleteConfirm lists the selected plans and asks before deleting them.
// GET /plans/bulk-delete?ids=1&ids=2&page=N.
func (h *UIHandlers) PlanBulkDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	ids := selectedIDs(r.URL.Query()["ids"])
	page := getPage(r.URL.Query())
	view := h.plansView(page)
	if len(ids) == 0 {
		h.renderPlansWithError(w, r, view, apperrors.Validation(errMsgSelectPlans))
		return
	}
	if err := view.List.Load(r.Context()); err != nil && h.handleBackendFailure(w, r, err) {
		return
	}
	h.renderConfirm(w, r, pageMeta("Delete plans", PagePlanBulkConfirm), planBulkDeleteDialog(view.List, ids, page), nil)
}

// PlanBulkDelete deletes the selected plans in one call.
// POST /plans/bulk-delete.
func (h *UIHandlers) PlanBulkDelete(w http.ResponseWriter, r *http.Request) {
	if err := parseRequestForm(r); err != nil {
		h.renderErrorPage(w, r, http.StatusBadRequest, "The submitted form could not be read.")
		return
	}
	page := listPage(r)
	view := h.plansView(page)
	ids := selectedIDs(r.PostForm["ids"])
	if len(ids) == 0 {
		h.renderPlansWithError(w, r, view, apperrors.Validation(errMsgSelectPlans))
		return
	}

	resp, err := h.PlanSvc.DeleteMany(r.Context(), view.List, ids)
	if mutationFailed(view.List, err) {
		if loadErr := view.List.Load(r.Context()); loadErr != nil && h.handleBackendFailure(w, r, loadErr) {
			return
		}
		h.renderConfirm(w, r, pageMeta("Delete plans", PagePlanBulkConfirm), planBulkDeleteDialog(view.List, ids, page), err)
		return
	}
	// Never rest on a page the deletion emptied.
	if st := view.List.State(); st.Status == listing.StatusLoaded && len(st.Items) == 0 && st.Query.Page > 1 {
		_ = view.List.SetPage(r.Context(), max(st.Meta.TotalPages, 1))
	}
	finishMutation(h, w, r, view, bulkMessage(resp, "Plans deleted."))
}

// renderPlansWithError shows the plans list with err in the banner and as a toast.
func (h *UIHandlers) renderPlansWithError(w http.ResponseWriter, r *http.Request, view ListView[model.Plan, listing.NoFilter], err error) {
	if h.handleBackendFailure(w, r, err) {
		return
	}
	if wantsJSON(r) {
		WriteAppError(w, err)
		return
	}
	msg := processError(err, nil)
	if IsHTMX(r) {
		triggerToast(w, msg, "error")
		SetHXPushURL(w, view.pageURL(view.List.State().Requested.Page))
	}
	enrich := view.Enrich
	view.Enrich = func(b *TemplateDataBuilder, st listing.State[model.Plan, listing.NoFilter]) {
		if enrich != nil {
			enrich(b, st)
		}
		b.WithError(msg)
	}
	HandleList(h, w, r, view)
}

// selectedIDs drops blanks and duplicates from checkbox values, keeping their order.
func selectedIDs(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		ids = append(ids, v)
	}
	return ids
}

// bulkMessage prefers the backend's own summary.
func bulkMessage(resp *model.BulkResponse, fallback string) string {
	if resp == nil {
		return fallback
	}
	if msg := strings.TrimSpace(resp.Message); msg != "" {
		return msg
	}
	switch {
	case resp.Deleted > 0:
		return fmt.Sprintf("%d plan(s) deleted.", resp.Deleted)
	case resp.Synced > 0 || resp.Failed > 0:
		return fmt.Sprintf("%d plan(s) synced, %d failed.", resp.Synced, resp.Failed)
	default:
		return fallback
	}
}

func planDeleteDialog(p model.Plan, page int) ConfirmDialog {
	subject := p.Name
	if subject == "" {
		subject = "plan " + p.ID.String()
	}
	return ConfirmDialog{
		Title:        "Delete plan",
		Message:      "Subscribers keep their current period; the plan can no longer be purchased.",
		Subject:      subject,
		Irreversible: true,
		Danger:       true,
		ActionURL:    plansPath + "/" + p.ID.String() + "/delete",
		SubmitLabel:  "Delete",
		CancelURL:    buildPageURL(plansPath, url.Values{}, page),
		Hidden:       listContextFields(page),
	}
}

// planBulkDeleteDialog names each selected plan found on the loaded page; others are listed by id.
func planBulkDeleteDialog(list *service.PlanList, ids []string, page int) ConfirmDialog {
	names := make([]string, 0, len(ids))
	hidden := listContextFields(page)
	for _, id := range ids {
		name := "Plan " + id
		if p, ok := service.FindItem(list, func(p model.Plan) bool { return p.ID.String() == id }); ok && p.Name != "" {
			name = p.Name
		}
		names = append(names, name)
		hidden = append(hidden, HiddenField{Name: "ids", Value: id})
	}
	return ConfirmDialog{
		Title:        "Delete plans",
		Message:      fmt.Sprintf("%d plan(s) will be deleted.", len(ids)),
		Irreversible: true,
		Danger:       true,
		ActionURL:    plansPath + "/bulk-delete",
		SubmitLabel:  "Delete selected",
		CancelURL:    buildPageURL(plansPath, url.Values{}, page),
		Hidden:       hidden,
		Items:        names,
	}
}
