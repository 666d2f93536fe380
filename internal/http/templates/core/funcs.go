package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/target/subscription-admin/internal/http/uiutil"
)

// Deps holds optional dependencies for constructing the core template func map.
type Deps struct {
	Template           **template.Template
	ContentTemplateFor func(string) string
}

// Funcs returns a template.FuncMap containing helpers that are broadly useful across templates.
func Funcs(deps Deps) template.FuncMap {
	funcs := template.FuncMap{
		"sectionTmpl":  deps.ContentTemplateFor,
		"friendlyTime": friendlyTime,
		"date":         uiutil.FormatDate,
		"add":          func(a, b int) int { return a + b },
		"sub":          func(a, b int) int { return a - b },
		"formatNumber": formatNumberTemplate,
		"money":        money,
		"percent":      percent,
		"barWidth":     barWidth,
		"statusClass":  statusClass,
		"humanize":     uiutil.Humanize,
		"initials":     uiutil.Initials,
		"truncateText": TruncateText,
		"dict":         dict,
	}

	addRenderFuncs(funcs, deps)
	return funcs
}

func addRenderFuncs(funcs template.FuncMap, deps Deps) {
	funcs["renderSection"] = func(page string, data any) (template.HTML, error) {
		if deps.Template == nil || *deps.Template == nil {
			return "", errors.New("template not initialized")
		}
		var buf bytes.Buffer
		if err := (*deps.Template).ExecuteTemplate(&buf, deps.ContentTemplateFor(page), data); err != nil {
			return "", err
		}
		// #nosec G203 - rendered by our own html/template set; values were escaped during ExecuteTemplate.
		return template.HTML(buf.String()), nil
	}

	funcs["toJSON"] = func(v any) (string, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	// sanitizedHTML marks policy content as safe. Only content that went through
	// service.SanitizeHTML may be passed here.
	funcs["sanitizedHTML"] = func(s string) template.HTML {
		// #nosec G203 - input is sanitized by the policy service before it reaches templates.
		return template.HTML(s)
	}
}

// friendlyTime accepts a time.Time, *time.Time or backend timestamp string.
func friendlyTime(ts any) string {
	var t0 time.Time
	switch v := ts.(type) {
	case time.Time:
		t0 = v
	case *time.Time:
		if v != nil {
			t0 = *v
		}
	case string:
		parsed, ok := uiutil.ParseBackendTime(v)
		if !ok {
			return v
		}
		t0 = parsed
	default:
		return ""
	}
	return uiutil.FormatFriendlyDateTime(t0)
}

// formatNumberTemplate formats any integer type with comma separators for thousands.
func formatNumberTemplate(v any) string {
	var n int64
	switch x := v.(type) {
	case int:
		n = int64(x)
	case int32:
		n = int64(x)
	case int64:
		n = x
	case float64:
		n = int64(x)
	default:
		return fmt.Sprint(v)
	}
	if n < 0 {
		return "-" + uiutil.GroupThousands(strconv.FormatInt(-n, 10))
	}
	return uiutil.GroupThousands(strconv.FormatInt(n, 10))
}

// money accepts the backend's decimal strings as well as raw floats.
func money(amount any, currency string) string {
	switch v := amount.(type) {
	case float64:
		return uiutil.FormatMoney(v, currency)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return v
		}
		return uiutil.FormatMoney(f, currency)
	case int:
		return uiutil.FormatMoney(float64(v), currency)
	default:
		return fmt.Sprint(v)
	}
}

func percent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

// barWidth scales value against peak into a 0..100 CSS width.
func barWidth(value, peak int) int {
	if peak <= 0 || value <= 0 {
		return 0
	}
	w := value * 100 / peak
	if w < 2 {
		return 2
	}
	return min(w, 100)
}

func statusClass(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "succeeded", "active", "paid", "configured", "superadmin":
		return "badge-success"
	case "pending", "trialing", "incomplete", "processing":
		return "badge-warning"
	case "failed", "canceled", "cancelled", "past_due", "unpaid", "disabled", "delinquent":
		return "badge-danger"
	case "admin":
		return "badge-info"
	default:
		return "badge-light"
	}
}

// dict builds a map from alternating key/value arguments so partials can take several inputs.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict requires an even number of arguments")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

// TruncateText truncates a string to a maximum number of runes (not bytes).
// The maxLen parameter can be any numeric type for template flexibility.
func TruncateText(s string, maxLen any) string {
	var n int
	switch v := maxLen.(type) {
	case int:
		n = v
	case int64:
		n = int(v)
	case float64:
		n = int(v)
	default:
		return s
	}
	return uiutil.TruncateWithEllipsis(s, n)
}
