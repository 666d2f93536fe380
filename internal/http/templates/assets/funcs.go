package assets

import (
	"html/template"

	httpassets "github.com/target/subscription-admin/internal/http/assets"
)

// Options configures asset-related template helpers.
type Options struct {
	Resolver    *httpassets.AssetResolver
	DevMode     bool
	CriticalCSS func() string
}

// Funcs returns the asset, devMode and criticalCSS template helpers.
func Funcs(opts Options) template.FuncMap {
	funcs := template.FuncMap{
		"asset": func(logicalName string) string {
			return httpassets.ResolveAsset(opts.Resolver, logicalName, opts.DevMode)
		},
		"devMode": func() bool { return opts.DevMode },
	}

	funcs["criticalCSS"] = func() template.CSS {
		if opts.CriticalCSS == nil {
			return ""
		}
		// #nosec G203 - read from frontend/static, never from user input
		return template.CSS(opts.CriticalCSS())
	}

	return funcs
}
