package valueobjects

import "strconv"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// MaxPage mantém o offset longe de estouro de int
	MaxPage = 1_000_000
)

// Pagination representa uma página 1-based de resultados
type Pagination struct {
	Page  int
	Limit int
}

// NewPagination normaliza página e limite, aplicando os valores padrão
func NewPagination(page, limit int) Pagination {
	if page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Pagination{Page: page, Limit: limit}
}

// ParsePagination converte os parâmetros de query; valores inválidos usam o padrão
func ParsePagination(page, limit string) Pagination {
	p, err := strconv.Atoi(page)
	if err != nil {
		p = DefaultPage
	}
	l, err := strconv.Atoi(limit)
	if err != nil {
		l = DefaultLimit
	}
	return NewPagination(p, l)
}

// Offset retorna quantos registros pular
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Page é uma página de resultados com o total de registros que casaram com o filtro
type Page[T any] struct {
	Items      []T
	Total      int64
	Pagination Pagination
}

// TotalPages retorna ceil(Total/Limit)
func (p Page[T]) TotalPages() int {
	if p.Pagination.Limit < 1 {
		return 0
	}
	limit := int64(p.Pagination.Limit)
	return int((p.Total + limit - 1) / limit)
}
