package dto

import "github.com/rafabene/agendasaude-backend/internal/domain/repositories"

// PaginationQuery são os parâmetros de paginação; sem page a listagem não é paginada
type PaginationQuery struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1"`
}

// ToPagination converte a query para a paginação dos repositórios
func (q PaginationQuery) ToPagination() repositories.Pagination {
	return repositories.Pagination{Page: q.Page, PageSize: q.PageSize}
}

// PageResponse é o envelope das listagens paginadas
type PageResponse[T any] struct {
	Count    int64 `json:"count"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Results  []T   `json:"results"`
}

// ListResponse devolve a lista pura ou, com paginação ativa, o envelope com o total
func ListResponse[T any](items []T, total int64, pagination repositories.Pagination) any {
	if !pagination.Enabled() {
		return items
	}

	p := pagination.Normalized()
	return PageResponse[T]{
		Count:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
		Results:  items,
	}
}
