package listing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/subscription-admin/internal/domain/model"
)

func render(entries []model.PageEntry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

func TestWindow_Desktop(t *testing.T) {
	tests := []struct {
		current, total int
		want           string
	}{
		{1, 1, "1"},
		{2, 5, "1 2 3 4 5"},
		{1, 10, "1 2 3 4 ... 10"},
		{3, 10, "1 2 3 4 ... 10"},
		{4, 10, "1 ... 3 4 5 ... 10"},
		{5, 10, "1 ... 4 5 6 ... 10"},
		{7, 10, "1 ... 6 7 8 ... 10"},
		{8, 10, "1 ... 7 8 9 10"},
		{10, 10, "1 ... 7 8 9 10"},
		{3, 6, "1 2 3 4 ... 6"},
		{4, 6, "1 ... 3 4 5 6"},
	}
	for _, tt := range tests {
		got := render(Window(tt.current, tt.total, MaxVisibleDesktop))
		assert.Equal(t, tt.want, got, "current=%d total=%d", tt.current, tt.total)
	}
}

func TestWindow_Mobile(t *testing.T) {
	tests := []struct {
		current, total int
		want           string
	}{
		{1, 3, "1 2 3"},
		{1, 10, "1 2 ... 10"},
		{2, 10, "1 2 ... 10"},
		{3, 10, "1 ... 3 ... 10"},
		{9, 10, "1 ... 9 10"},
	}
	for _, tt := range tests {
		got := render(Window(tt.current, tt.total, MaxVisibleMobile))
		assert.Equal(t, tt.want, got, "current=%d total=%d", tt.current, tt.total)
	}
}

func TestWindow_ClampsInputs(t *testing.T) {
	assert.Equal(t, "1", render(Window(0, 0, MaxVisibleDesktop)))
	assert.Equal(t, "1 2 3", render(Window(9, 3, MaxVisibleDesktop)))
	assert.Equal(t, "1 2 ... 10", render(Window(1, 10, 1)))
}

// Every valid (current, total) pair yields a stable window containing current exactly once,
// never two adjacent ellipses, strictly increasing page numbers, and no more than maxVisible numbers.
func TestWindow_Properties(t *testing.T) {
	for _, maxVisible := range []int{3, 4, 5, 7} {
		for total := 1; total <= 40; total++ {
			for current := 1; current <= total; current++ {
				first := Window(current, total, maxVisible)
				require.Equal(t, first, Window(current, total, maxVisible), "window must be deterministic")

				hits, numbers, last := 0, 0, 0
				prevGap := false
				for _, e := range first {
					if e.IsEllipsis {
						require.False(t, prevGap, "adjacent ellipses for %d/%d", current, total)
						prevGap = true
						continue
					}
					prevGap = false
					numbers++
					require.Greater(t, e.Number, last, "numbers must increase for %d/%d", current, total)
					last = e.Number
					if e.Number == current {
						hits++
					}
				}
				require.Equal(t, 1, hits, "current %d/%d (max %d) must appear exactly once", current, total, maxVisible)
				require.LessOrEqual(t, numbers, maxVisible)
				require.Equal(t, 1, first[0].Number)
				require.Equal(t, total, first[len(first)-1].Number)
			}
		}
	}
}

func TestResolveWindow_PrefersBackendNumbers(t *testing.T) {
	meta := model.PaginationMeta{
		CurrentPage: 2,
		TotalPages:  3,
		PageNumbers: []model.PageEntry{model.PageNumber(1), model.PageNumber(2), model.PageNumber(3)},
	}
	got := ResolveWindow(meta, MaxVisibleMobile)
	assert.Equal(t, "1 2 3", render(got))

	got[0] = model.Gap()
	assert.Equal(t, 1, meta.PageNumbers[0].Number, "resolved window must not alias the metadata")

	meta.PageNumbers = nil
	meta.CurrentPage, meta.TotalPages = 6, 12
	assert.Equal(t, "1 ... 6 ... 12", render(ResolveWindow(meta, MaxVisibleMobile)))
}
