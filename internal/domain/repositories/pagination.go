package repositories

// Limites de paginação
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Pagination controla a paginação das listagens.
// Page == 0 significa "sem paginação".
type Pagination struct {
	Page     int // Página (começa em 1)
	PageSize int // Itens por página (default: 20, max: 100)
}

// Enabled indica se a listagem deve ser paginada
func (p Pagination) Enabled() bool {
	return p.Page > 0
}

// Normalized aplica defaults e limites
func (p Pagination) Normalized() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset retorna o deslocamento da página atual
func (p Pagination) Offset() int {
	n := p.Normalized()
	return (n.Page - 1) * n.PageSize
}
