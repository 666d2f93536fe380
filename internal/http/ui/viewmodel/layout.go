package viewmodel

// User represents the signed-in administrator exposed to templates.
type User struct {
	Name         string
	Email        string
	Role         string
	IsSuperAdmin bool
}

// Layout captures shared chrome metadata (titles, navigation state, auth flags).
type Layout struct {
	Title           string
	PageTitle       string
	CurrentPage     string
	NavSection      string
	CSRFToken       string
	IsAuthenticated bool
	User            *User
}

// LayoutProvider exposes layout metadata for renderer utilities.
type LayoutProvider interface {
	LayoutData() *Layout
}
