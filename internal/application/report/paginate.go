package report

// Page is one 1-indexed slice of a larger row set.
type Page[T any] struct {
	Rows       []T
	TotalPages int
	TotalCount int
}

// Paginate slices rows for a 1-indexed page. A page past the end is not an
// error: the UI disables "Next" at the boundary but a stale client can still
// ask, and it gets an empty slice. Zero rows means zero pages.
func Paginate[T any](rows []T, page, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	if page < 1 {
		page = 1
	}
	total := len(rows)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start >= total {
		return Page[T]{Rows: []T{}, TotalPages: totalPages, TotalCount: total}
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return Page[T]{Rows: rows[start:end], TotalPages: totalPages, TotalCount: total}
}
