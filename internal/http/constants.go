package httpx

// CurrentPage constants define the page identifiers used in templates and navigation.
// These constants ensure consistency across UI handlers and template mapping.
const (
	// Main navigation pages.
	PageDashboard = "dashboard"

	// User pages.
	PageUsers       = "users"
	PageUserConfirm = "user-confirm" // toggle/delete confirmation

	// Administrator pages.
	PageAdministrators       = "administrators"
	PageAdministratorForm    = "administrator-form"
	PageAdministratorConfirm = "administrator-confirm"

	// Billing pages.
	PagePayments      = "payments"
	PageSubscriptions = "subscriptions"
	PageCustomers     = "customers"

	// Plan pages.
	PagePlans           = "plans"
	PagePlanView        = "plan-view"
	PagePlanForm        = "plan-form"
	PagePlanConfirm     = "plan-confirm"
	PagePlanBulkConfirm = "plan-bulk-confirm"

	// Settings pages.
	PageAPIKeys    = "api-keys"
	PageAPIKeyForm = "api-key-form"
	PageProfile    = "profile"
	PagePolicy     = "policy"
	PagePolicyForm = "policy-form"
)

// Template paths used for loading templates in tests and production.
const (
	// Template directory paths.
	TemplatePathFromRoot = "frontend/templates"       // From project root
	TemplatePathFromTest = "../../frontend/templates" // From internal/http test files
)

// FormMode represents the mode of a form (create or edit).
// Using a dedicated type improves compile-time checks and prevents typos.
type FormMode string

const (
	// FormModeEdit indicates the form is in edit mode.
	FormModeEdit FormMode = "edit"
	// FormModeCreate indicates the form is in create mode.
	FormModeCreate FormMode = "create"
)

// Content templates are defined once and reused to avoid per-call allocations.
//
//nolint:gochecknoglobals // static read-only lookup for templates; avoids per-call allocations
var contentTemplates = map[string]string{
	PageDashboard:            "dashboard-content",
	PageUsers:                "users-content",
	PageUserConfirm:          "confirm-content",
	PageAdministrators:       "administrators-content",
	PageAdministratorForm:    "administrator-form-content",
	PageAdministratorConfirm: "confirm-content",
	PagePayments:             "payments-content",
	PageSubscriptions:        "subscriptions-content",
	PageCustomers:            "customers-content",
	PagePlans:                "plans-content",
	PagePlanView:             "plan-view-content",
	PagePlanForm:             "plan-form-content",
	PagePlanConfirm:          "confirm-content",
	PagePlanBulkConfirm:      "confirm-content",
	PageAPIKeys:              "api-keys-content",
	PageAPIKeyForm:           "api-key-form-content",
	PageProfile:              "profile-content",
	PagePolicy:               "policy-content",
	PagePolicyForm:           "policy-form-content",
}

// ContentTemplateMap returns the mapping from CurrentPage to template name.
// This is the single source of truth for page-to-template mapping.
func ContentTemplateMap() map[string]string { return contentTemplates }

// ContentTemplateFor returns the content template for the given CurrentPage.
// Falls back to dashboard-content for unknown pages.
func ContentTemplateFor(currentPage string) string {
	if name, ok := ContentTemplateMap()[currentPage]; ok {
		return name
	}
	return "dashboard-content"
}

// navSections maps every page to the sidebar entry it highlights.
//
//nolint:gochecknoglobals // static read-only lookup
var navSections = map[string]string{
	PageUserConfirm:          PageUsers,
	PageAdministratorForm:    PageAdministrators,
	PageAdministratorConfirm: PageAdministrators,
	PagePlanView:             PagePlans,
	PagePlanForm:             PagePlans,
	PagePlanConfirm:          PagePlans,
	PagePlanBulkConfirm:      PagePlans,
	PageAPIKeyForm:           PageAPIKeys,
	PagePolicyForm:           PagePolicy,
}

// NavSectionFor returns the navigation entry that should be marked active for currentPage.
func NavSectionFor(currentPage string) string {
	if section, ok := navSections[currentPage]; ok {
		return section
	}
	return currentPage
}
