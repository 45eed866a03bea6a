package models

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// PageQuery is bound from ?page=&limit=
type PageQuery struct {
	Page  int64 `form:"page" binding:"omitempty,min=1"`
	Limit int64 `form:"limit" binding:"omitempty,min=1,max=100"`
}

// Normalize fills defaults and clamps out-of-range values.
func (q PageQuery) Normalize(defaultLimit int64) PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
	if q.Limit > MaxPageLimit {
		q.Limit = MaxPageLimit
	}
	return q
}

func (q PageQuery) Skip() int64 {
	return (q.Page - 1) * q.Limit
}

// Pagination is the block attached to list envelopes
type Pagination struct {
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

func NewPagination(q PageQuery, total int64) *Pagination {
	pages := int64(0)
	if q.Limit > 0 {
		pages = (total + q.Limit - 1) / q.Limit
	}
	return &Pagination{Page: q.Page, Limit: q.Limit, Total: total, Pages: pages}
}
