package listing

import "github.com/target/subscription-admin/internal/domain/model"

// SlicePage pages an already complete collection for endpoints that return everything at once.
// page is clamped into range so a shrinking collection never yields an empty page past the end.
func SlicePage[T any](all []T, page, size int) model.Page[T] {
	if size < 1 {
		size = model.DefaultPageSize
	}
	total := len(all)
	pages := max((total+size-1)/size, 1)
	page = clamp(page, 1, pages)

	start := min((page-1)*size, total)
	end := min(start+size, total)
	items := make([]T, end-start)
	copy(items, all[start:end])

	return model.Page[T]{Items: items, Meta: model.OffsetMeta(page, size, total, len(items))}
}
