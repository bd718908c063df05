package utils

import "nsdrink-pos/dtos"

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

type Pagination struct {
	Page   int
	Limit  int
	Offset int
}

func NewPagination(page, limit int) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return Pagination{Page: page, Limit: limit, Offset: (page - 1) * limit}
}

func BuildMeta(p Pagination, total int64) dtos.PageMeta {
	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return dtos.PageMeta{
		CurrentPage:     p.Page,
		TotalPages:      totalPages,
		TotalOrders:     total,
		HasNextPage:     p.Page < totalPages,
		HasPreviousPage: p.Page > 1,
		Limit:           p.Limit,
	}
}
