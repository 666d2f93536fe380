package uiutil

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

const (
	FriendlyDateTimeLayout = "Jan 2, 2006 3:04 PM"
	FriendlyDateLayout     = "Jan 2, 2006"
)

// backendTimeLayouts are the timestamp shapes the backend emits, most specific first.
var backendTimeLayouts = []string{ //nolint:gochecknoglobals // read-only
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseBackendTime parses a backend timestamp string.
func ParseBackendTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range backendTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FriendlyRelativeTime returns a human-friendly description of how long ago t occurred.
// Times in the future are treated as "just now" to avoid confusing negative durations.
func FriendlyRelativeTime(t time.Time) string {
	diff := time.Since(t)
	if diff < 0 {
		return "just now"
	}

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return plural(int(diff.Minutes()), "minute") + " ago"
	case diff < 24*time.Hour:
		return plural(int(diff.Hours()), "hour") + " ago"
	case diff < 7*24*time.Hour:
		return plural(int(diff.Hours()/24), "day") + " ago"
	default:
		return FormatFriendlyDateTime(t)
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}

// FormatFriendlyDateTime returns a consistent, user-friendly local timestamp representation.
func FormatFriendlyDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(FriendlyDateTimeLayout)
}

// FormatDate renders a backend date string as "Jan 2, 2006". Unparseable input is returned as is.
func FormatDate(s string) string {
	t, ok := ParseBackendTime(s)
	if !ok {
		return s
	}
	return t.Format(FriendlyDateLayout)
}

// FormatMoney renders an amount with two decimals and thousands separators.
// USD gets a dollar sign; other currencies are suffixed with their upper-cased code.
func FormatMoney(amount float64, currency string) string {
	neg := amount < 0
	cents := int64(math.Round(math.Abs(amount) * 100))
	whole := GroupThousands(strconv.FormatInt(cents/100, 10))
	s := whole + "." + twoDigits(cents%100)

	code := strings.ToUpper(strings.TrimSpace(currency))
	switch code {
	case "", "USD":
		s = "$" + s
	default:
		s = s + " " + code
	}
	if neg {
		return "-" + s
	}
	return s
}

func twoDigits(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}

// GroupThousands inserts comma separators into a run of digits.
func GroupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	b.Grow(len(digits) + (len(digits)-1)/3)
	prefix := len(digits) % 3
	if prefix == 0 {
		prefix = 3
	}
	b.WriteString(digits[:prefix])
	for i := prefix; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Humanize turns a wire value such as "one_time" or "past_due" into "One time" / "Past due".
func Humanize(v string) string {
	v = strings.TrimSpace(strings.NewReplacer("_", " ", "-", " ").Replace(v))
	if v == "" {
		return ""
	}
	r := []rune(strings.ToLower(v))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// Initials returns up to two upper-cased initials for an avatar placeholder.
func Initials(name string) string {
	var out []rune
	for _, part := range strings.Fields(name) {
		r := []rune(part)
		out = append(out, unicode.ToUpper(r[0]))
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}

// TruncateWithEllipsis shortens text to the provided rune limit and appends an ellipsis when truncated.
func TruncateWithEllipsis(text string, limit int) string {
	runes := []rune(text)
	if limit <= 0 || len(runes) <= limit {
		return text
	}
	if limit == 1 {
		return "…"
	}
	return strings.TrimSpace(string(runes[:limit-1])) + "…"
}
