package httpx

import (
	"context"
	"net/http"
	"net/url"

	"github.com/target/subscription-admin/internal/domain/model"
)

const profilePath = "/profile"

// Profile renders the account page: the details form and the password form.
// GET /profile.
func (h *UIHandlers) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.ProfileSvc.Get(r.Context())
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	h.renderProfileForm(w, r, map[string]any{
		"Profile":  profile,
		"FormData": model.UpdateProfileRequest{Name: profile.Name, Phone: profile.Phone},
	})
}

// renderProfileForm fills in the parts of the page a re-render may lack.
func (h *UIHandlers) renderProfileForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data, _ = prepareFormFrame(FormFrameOpts{
		R:           r,
		Data:        data,
		DefaultMode: FormModeEdit,
		MetaForMode: func(FormMode) PageMeta { return pageMeta("Profile", PageProfile) },
	})
	if _, ok := data["Profile"]; !ok {
		if profile, err := h.ProfileSvc.Get(r.Context()); err == nil {
			data["Profile"] = profile
		}
	}
	if _, ok := data["FormData"]; !ok {
		if profile, ok := data["Profile"].(model.Profile); ok {
			data["FormData"] = model.UpdateProfileRequest{Name: profile.Name, Phone: profile.Phone}
		}
	}
	if _, ok := data["PasswordErrors"]; !ok {
		data["PasswordErrors"] = map[string]string{}
	}
	data["ActionURL"] = profilePath
	data["PasswordActionURL"] = profilePath + "/password"
	h.renderDashboardPage(w, r, data)
}

// ProfileUpdate saves the name and phone.
// POST /profile.
func (h *UIHandlers) ProfileUpdate(w http.ResponseWriter, r *http.Request) {
	var updated model.Profile
	HandleForm(FormHandlerOpts[model.UpdateProfileRequest]{
		H:      h,
		W:      w,
		R:      r,
		Mode:   FormModeEdit,
		Parser: parseProfileForm,
		Submit: func(ctx context.Context, req model.UpdateProfileRequest) error {
			var err error
			updated, err = h.ProfileSvc.Update(ctx, req)
			return err
		},
		OnSuccess: func(w http.ResponseWriter, r *http.Request) {
			const msg = "Profile updated."
			switch {
			case wantsJSON(r):
				WriteJSON(w, http.StatusOK, map[string]any{"message": msg, "profile": updated})
			case IsHTMX(r):
				triggerToast(w, msg, "success")
				h.renderProfileForm(w, r, map[string]any{
					"Profile":  updated,
					"FormData": model.UpdateProfileRequest{Name: updated.Name, Phone: updated.Phone},
				})
			default:
				http.Redirect(w, r, profilePath, http.StatusSeeOther)
			}
		},
		Renderer: h.renderProfileForm,
		PageMeta: pageMeta("Profile", PageProfile),
	})
}

// ProfileChangePassword sets a new password. Every session of the administrator is revoked,
// so a successful change ends on the sign-in page.
// POST /profile/password.
func (h *UIHandlers) ProfileChangePassword(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	HandleForm(FormHandlerOpts[model.ChangePasswordRequest]{
		H:      h,
		W:      w,
		R:      r,
		Mode:   FormModeEdit,
		Parser: parseChangePasswordForm,
		Submit: func(ctx context.Context, req model.ChangePasswordRequest) error {
			_, err := h.ProfileSvc.ChangePassword(ctx, sess, req)
			return err
		},
		OnSuccess: func(w http.ResponseWriter, r *http.Request) {
			clearCookie(w, r, SessionCookieName, h.CookieDomain)
			target := "/login?notice=password-changed"
			if wantsJSON(r) {
				WriteJSON(w, http.StatusOK, map[string]any{"message": loginNotices["password-changed"], "location": target})
				return
			}
			redirectAfterPost(w, r, target)
		},
		Renderer: h.renderPasswordError,
		PageMeta: pageMeta("Profile", PageProfile),
	})
}

// renderPasswordError moves the password form's errors to their own slot and never echoes passwords.
func (h *UIHandlers) renderPasswordError(w http.ResponseWriter, r *http.Request, data map[string]any) {
	if errs, ok := data["Errors"].(map[string]string); ok {
		data["PasswordErrors"] = errs
	}
	delete(data, "Errors")
	delete(data, "FormData")
	data["PasswordError"] = data["ErrorMessage"]
	delete(data, "Error")
	delete(data, "ErrorMessage")
	h.renderProfileForm(w, r, data)
}

func parseProfileForm(form url.Values) (model.UpdateProfileRequest, map[string]string) {
	return model.UpdateProfileRequest{Name: formValue(form, "name"), Phone: formValue(form, "phone")}, nil
}

func parseChangePasswordForm(form url.Values) (model.ChangePasswordRequest, map[string]string) {
	return model.ChangePasswordRequest{
		OldPassword:     form.Get("old_password"),
		NewPassword:     form.Get("new_password"),
		ConfirmPassword: form.Get("confirm_password"),
	}, nil
}
