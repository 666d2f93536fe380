package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "  ", want: ""},
		{name: "plain text is escaped", in: "a < b & c", want: "a &lt; b &amp; c"},
		{name: "allowed markup kept", in: "<h2>Data</h2><p>We <strong>never</strong> sell it.</p>", want: "<h2>Data</h2><p>We <strong>never</strong> sell it.</p>"},
		{name: "script dropped with content", in: "<p>Hi</p><script>alert(1)</script>", want: "<p>Hi</p>"},
		{name: "event handlers stripped", in: `<p onclick="x()" class="lead">Hi</p>`, want: "<p>Hi</p>"},
		{name: "unknown element unwrapped", in: "<section><p>Hi</p></section>", want: "<p>Hi</p>"},
		{name: "safe link kept", in: `<a href="https://example.com" onclick="x()">site</a>`, want: `<a href="https://example.com" rel="noopener noreferrer">site</a>`},
		{name: "javascript link stripped", in: `<a href="javascript:alert(1)">x</a>`, want: "<a>x</a>"},
		{name: "protocol relative link stripped", in: `<a href="//evil.example">x</a>`, want: "<a>x</a>"},
		{name: "void elements", in: "line<br>next<hr>", want: "line<br>next<hr>"},
		{name: "iframe dropped", in: `<iframe src="https://x"></iframe><p>ok</p>`, want: "<p>ok</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeHTML(tt.in))
		})
	}
}
