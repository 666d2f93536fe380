//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// AccessLevel is the privilege tier of a dashboard administrator.
type AccessLevel string

const (
	AccessLevelAdmin      AccessLevel = "admin"
	AccessLevelSuperAdmin AccessLevel = "superadmin"
)

// AccessLevels lists the selectable access levels.
func AccessLevels() []AccessLevel {
	return []AccessLevel{AccessLevelAdmin, AccessLevelSuperAdmin}
}

// Administrator is a dashboard operator account.
type Administrator struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Image       string `json:"image"`
	AccessLevel string `json:"access_level"`
	IsActive    bool   `json:"is_active"`
	DateJoined  string `json:"date_joined"`
}

// AdministratorsListResponse is the body of GET admin/user-lists/.
type AdministratorsListResponse struct {
	Message string `json:"message"`
	Data    struct {
		Users      []Administrator `json:"users"`
		Pagination AdminPagination `json:"pagination"`
	} `json:"data"`
}

// Page converts the response into a list page.
func (r AdministratorsListResponse) Page() Page[Administrator] {
	return Page[Administrator]{Items: r.Data.Users, Meta: r.Data.Pagination.Meta()}
}

// CreateAdministratorRequest is the closed payload for POST admin/create-admin/.
type CreateAdministratorRequest struct {
	Name          string      `json:"name"           validate:"required,max=255"`
	Email         string      `json:"email"          validate:"required,email"`
	ContactNumber string      `json:"contact_number" validate:"omitempty,max=32"`
	AccessLevel   AccessLevel `json:"access_level"   validate:"required,oneof=admin superadmin"`
	Password      string      `json:"password"       validate:"required,min=8,max=128"`
}

// UpdateAdministratorRequest is the closed payload for PATCH admin/administrators/{id}/.
type UpdateAdministratorRequest struct {
	Name          string      `json:"name"           validate:"required,max=255"`
	Email         string      `json:"email"          validate:"required,email"`
	ContactNumber string      `json:"contact_number" validate:"omitempty,max=32"`
	AccessLevel   AccessLevel `json:"access_level"   validate:"required,oneof=admin superadmin"`
}

// AdministratorRecord is the administrator shape echoed back by create and update.
type AdministratorRecord struct {
	ID            ID     `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contact_number"`
	AccessLevel   string `json:"access_level"`
	RoleDisplay   string `json:"role_display"`
	IsActive      bool   `json:"is_active"`
	CreatedAt     string `json:"created_at,omitempty"`
}

// AsAdministrator maps the echoed record onto the list row shape.
func (r AdministratorRecord) AsAdministrator() Administrator {
	return Administrator{
		ID:          r.ID,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.ContactNumber,
		AccessLevel: r.AccessLevel,
		IsActive:    r.IsActive,
	}
}

// AdministratorResponse is the body of create and update administrator calls.
type AdministratorResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    AdministratorRecord `json:"data"`
}
