package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageEntry_UnmarshalMixedWindow(t *testing.T) {
	var entries []PageEntry
	require.NoError(t, json.Unmarshal([]byte(`[1, "...", "4", 5, "…", 9]`), &entries))

	assert.Equal(t, []PageEntry{
		PageNumber(1), Gap(), PageNumber(4), PageNumber(5), Gap(), PageNumber(9),
	}, entries)
}

func TestPageEntry_UnmarshalRejectsGarbage(t *testing.T) {
	var e PageEntry
	assert.Error(t, json.Unmarshal([]byte(`"next"`), &e))
	assert.Error(t, json.Unmarshal([]byte(`true`), &e))
}

func TestPageEntry_MarshalRoundsToWireForm(t *testing.T) {
	b, err := json.Marshal([]PageEntry{PageNumber(1), Gap(), PageNumber(7)})
	require.NoError(t, err)
	assert.JSONEq(t, `[1, "...", 7]`, string(b))
	assert.Equal(t, "...", Gap().String())
	assert.Equal(t, "7", PageNumber(7).String())
}

func TestPaginationMeta_DecodeUsersShape(t *testing.T) {
	raw := `{
		"current_page": 2, "page_size": 10, "total_pages": 3, "total_count": 25,
		"start_index": 11, "end_index": 20, "has_previous": true, "has_next": true,
		"previous_page": 1, "next_page": null, "page_numbers": [1, 2, 3]
	}`
	var meta PaginationMeta
	require.NoError(t, json.Unmarshal([]byte(raw), &meta))

	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 25, meta.TotalCount)
	assert.True(t, meta.PreviousPage.Valid)
	assert.Equal(t, int32(1), meta.PreviousPage.Int32)
	assert.False(t, meta.NextPage.Valid)
	assert.Len(t, meta.PageNumbers, 3)
}

func TestAdminPagination_Meta(t *testing.T) {
	p := AdminPagination{CurrentPage: 3, PerPage: 10, Total: 21, TotalPages: 3, StartIndex: 21, EndIndex: 21, HasPrev: true}
	meta := p.Meta()

	assert.Equal(t, 3, meta.CurrentPage)
	assert.Equal(t, 10, meta.PageSize)
	assert.Equal(t, 21, meta.TotalCount)
	assert.True(t, meta.HasPrevious)
	assert.False(t, meta.HasNext)
	assert.Empty(t, meta.PageNumbers)
}

func TestOffsetMeta(t *testing.T) {
	tests := []struct {
		name                    string
		page, size, total, n    int
		wantPages, wantStart    int
		wantEnd                 int
		wantHasPrev, wantHasNxt bool
	}{
		{name: "first page", page: 1, size: 10, total: 25, n: 10, wantPages: 3, wantStart: 1, wantEnd: 10, wantHasNxt: true},
		{name: "last partial page", page: 3, size: 10, total: 25, n: 5, wantPages: 3, wantStart: 21, wantEnd: 25, wantHasPrev: true},
		{name: "empty", page: 1, size: 10, total: 0, n: 0, wantPages: 0},
		{name: "defaults size", page: 0, size: 0, total: 11, n: 10, wantPages: 2, wantStart: 1, wantEnd: 10, wantHasNxt: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := OffsetMeta(tt.page, tt.size, tt.total, tt.n)
			assert.Equal(t, tt.wantPages, meta.TotalPages)
			assert.Equal(t, tt.wantStart, meta.StartIndex)
			assert.Equal(t, tt.wantEnd, meta.EndIndex)
			assert.Equal(t, tt.wantHasPrev, meta.HasPrevious)
			assert.Equal(t, tt.wantHasNxt, meta.HasNext)
		})
	}
}

func TestID_UnmarshalNumberOrString(t *testing.T) {
	var v struct {
		A ID `json:"a"`
		B ID `json:"b"`
		C ID `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 7, "b": "#1233", "c": null}`), &v))
	assert.Equal(t, ID("7"), v.A)
	assert.Equal(t, ID("#1233"), v.B)
	assert.Equal(t, ID(""), v.C)
}
