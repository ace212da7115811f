package dto

import "strings"

// Límites de paginación de los listados.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ListQuery parámetros de un listado: página 1-based en la consola, búsqueda libre y filtros opcionales.
type ListQuery struct {
	Page    int    `query:"page"`
	Size    int    `query:"size"`
	Keyword string `query:"q"`
	Status  string `query:"status"`
	From    string `query:"from"` // YYYY-MM-DD
	To      string `query:"to"`   // YYYY-MM-DD
}

// Normalize aplica valores por defecto y recorta la búsqueda.
func (q ListQuery) Normalize(defaultSize int) ListQuery {
	if defaultSize <= 0 || defaultSize > MaxPageSize {
		defaultSize = DefaultPageSize
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Size <= 0 {
		q.Size = defaultSize
	}
	if q.Size > MaxPageSize {
		q.Size = MaxPageSize
	}
	q.Keyword = strings.TrimSpace(q.Keyword)
	q.Status = strings.TrimSpace(q.Status)
	return q
}

// Offset posición del primer elemento de la página.
func (q ListQuery) Offset() int {
	if q.Page <= 1 {
		return 0
	}
	return (q.Page - 1) * q.Size
}

// Page es el sobre único de listados: todas las respuestas de búsqueda del backend se normalizan a esta forma.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// Pages número total de páginas para un tamaño dado (mínimo 1).
func (p Page[T]) Pages(size int) int {
	if size <= 0 || p.Total <= 0 {
		return 1
	}
	return (p.Total + size - 1) / size
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
