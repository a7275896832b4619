package models

// Page is one page of an aggregation result.
type Page[T any] struct {
	Docs          []T    `json:"docs"`
	TotalDocs     int64  `json:"totalDocs"`
	Limit         int64  `json:"limit"`
	Page          int64  `json:"page"`
	TotalPages    int64  `json:"totalPages"`
	PagingCounter int64  `json:"pagingCounter"`
	HasPrevPage   bool   `json:"hasPrevPage"`
	HasNextPage   bool   `json:"hasNextPage"`
	PrevPage      *int64 `json:"prevPage"`
	NextPage      *int64 `json:"nextPage"`
}

// NewPage computes navigation fields from the total document count.
// page and limit must already be >= 1.
func NewPage[T any](docs []T, totalDocs, page, limit int64) *Page[T] {
	if docs == nil {
		docs = []T{}
	}
	p := &Page[T]{
		Docs:          docs,
		TotalDocs:     totalDocs,
		Limit:         limit,
		Page:          page,
		TotalPages:    (totalDocs + limit - 1) / limit,
		PagingCounter: (page-1)*limit + 1,
	}
	if p.TotalPages == 0 {
		p.TotalPages = 1
	}
	if page > 1 {
		prev := page - 1
		p.HasPrevPage, p.PrevPage = true, &prev
	}
	if page < p.TotalPages {
		next := page + 1
		p.HasNextPage, p.NextPage = true, &next
	}
	return p
}
