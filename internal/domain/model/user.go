//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "strings"

// UserFilter narrows the users list to a subscription segment.
type UserFilter string

const (
	UserFilterAll         UserFilter = "all"
	UserFilterFree        UserFilter = "free"
	UserFilterSubscribers UserFilter = "subscribers"
)

// UserFilters lists the filters in display order.
func UserFilters() []UserFilter {
	return []UserFilter{UserFilterAll, UserFilterFree, UserFilterSubscribers}
}

// Valid reports whether the filter is one the backend recognizes.
func (f UserFilter) Valid() bool {
	switch f {
	case UserFilterAll, UserFilterFree, UserFilterSubscribers:
		return true
	default:
		return false
	}
}

// ParseUserFilter normalizes a filter string, falling back to "all" for unknown values.
func ParseUserFilter(v string) UserFilter {
	f := UserFilter(strings.ToLower(strings.TrimSpace(v)))
	if !f.Valid() {
		return UserFilterAll
	}
	return f
}

// UserIdentity is the display block nested in a user row.
type UserIdentity struct {
	Name           string `json:"name"`
	Initials       string `json:"initials"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profile_picture"`
	AvatarURL      string `json:"avatar_url"`
}

// UserSubscription summarizes the plan a user is on.
type UserSubscription struct {
	Name     string `json:"name"`
	Status   string `json:"status"`
	PlanSlug string `json:"plan_slug"`
	IsFree   bool   `json:"is_free"`
}

// User is a platform end user as listed by the backend.
type User struct {
	SlNo         string           `json:"sl_no"`
	ID           ID               `json:"id"`
	User         UserIdentity     `json:"user"`
	Email        string           `json:"email"`
	Subscription UserSubscription `json:"subscription"`
	PhoneNumber  string           `json:"phone_number"`
	DateJoined   string           `json:"date_joined"`
	IsActive     bool             `json:"is_active"`
	IsVerified   bool             `json:"is_verified"`
	IsDisabled   bool             `json:"is_disabled"`
}

// FilterCounts holds the per-filter totals shown on the users tabs.
type FilterCounts struct {
	All         int `json:"all"`
	Free        int `json:"free"`
	Subscribers int `json:"subscribers"`
}

// UsersListResponse is the body of GET admin/users/.
type UsersListResponse struct {
	Success       bool           `json:"success"`
	Users         []User         `json:"users"`
	Pagination    PaginationMeta `json:"pagination"`
	FilterCounts  FilterCounts   `json:"filter_counts"`
	CurrentFilter string         `json:"current_filter"`
}

// Page converts the response into a list page.
func (r UsersListResponse) Page() Page[User] {
	return Page[User]{
		Items: r.Users,
		Meta:  r.Pagination,
		Counts: map[string]int{
			string(UserFilterAll):         r.FilterCounts.All,
			string(UserFilterFree):        r.FilterCounts.Free,
			string(UserFilterSubscribers): r.FilterCounts.Subscribers,
		},
	}
}

// ToggleUserStatusRequest carries the target state, never a flip, so repeated submits are idempotent.
type ToggleUserStatusRequest struct {
	IsDisabled bool `json:"is_disabled"`
}

// StatusResponse is the minimal body returned by toggle and delete endpoints.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
