package config

const (
	defaultMaxVisiblePages       = 5
	defaultMaxVisiblePagesMobile = 3
)

// ListingConfig controls the page-number windows rendered under every list.
type ListingConfig struct {
	MaxVisiblePages       int `env:"MAX_VISIBLE_PAGES"        envDefault:"5"`
	MaxVisiblePagesMobile int `env:"MAX_VISIBLE_PAGES_MOBILE" envDefault:"3"`
}

// Sanitize applies guardrails to listing configuration values.
func (l *ListingConfig) Sanitize() {
	if l.MaxVisiblePages < 3 {
		l.MaxVisiblePages = defaultMaxVisiblePages
	}
	if l.MaxVisiblePagesMobile < 3 {
		l.MaxVisiblePagesMobile = defaultMaxVisiblePagesMobile
	}
	if l.MaxVisiblePagesMobile > l.MaxVisiblePages {
		l.MaxVisiblePagesMobile = l.MaxVisiblePages
	}
}
