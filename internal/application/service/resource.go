package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhoicas/assettrack-console/internal/application/dto"
	"github.com/jhoicas/assettrack-console/internal/application/ports"
)

// Resource agrupa las funciones finas de una entidad: arman path y query y delegan en el gateway.
// T es el registro que devuelve el backend e In la entrada de los formularios.
type Resource[T any, In any] struct {
	gw   ports.Gateway
	base string
}

// NewResource construye el servicio para la ruta base indicada (ej. "/stacks").
func NewResource[T any, In any](gw ports.Gateway, base string) *Resource[T, In] {
	return &Resource[T, In]{gw: gw, base: base}
}

// Base ruta base del recurso en el backend.
func (s *Resource[T, In]) Base() string { return s.base }

// Search GET {base}/search con paginación (0-based en el backend) y filtros opcionales.
func (s *Resource[T, In]) Search(ctx context.Context, q dto.ListQuery) (dto.Page[T], error) {
	resp, err := s.gw.Do(ctx, ports.Request{
		Method: http.MethodGet,
		Path:   s.base + "/search",
		Query:  searchValues(q),
	})
	if err != nil {
		return dto.Page[T]{}, err
	}
	page, err := DecodePage[T](resp.Body)
	if err != nil {
		return dto.Page[T]{}, fmt.Errorf("%s: %w", s.base, err)
	}
	return page, nil
}

// All GET {base}/all: listado completo para poblar selectores de otros formularios.
func (s *Resource[T, In]) All(ctx context.Context) ([]T, error) {
	resp, err := s.gw.Do(ctx, ports.Request{Method: http.MethodGet, Path: s.base + "/all"})
	if err != nil {
		return nil, err
	}
	page, err := DecodePage[T](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.base, err)
	}
	return page.Items, nil
}

// Get GET {base}/:id.
func (s *Resource[T, In]) Get(ctx context.Context, id string) (*T, error) {
	resp, err := s.gw.Do(ctx, ports.Request{Method: http.MethodGet, Path: s.base + "/" + url.PathEscape(id)})
	if err != nil {
		return nil, err
	}
	return DecodeItem[T](resp.Body)
}

// Create POST {base}/create. Devuelve el registro creado si el backend lo informa.
func (s *Resource[T, In]) Create(ctx context.Context, in In) (*T, error) {
	resp, err := s.gw.Do(ctx, ports.Request{Method: http.MethodPost, Path: s.base + "/create", Body: in})
	if err != nil {
		return nil, err
	}
	return DecodeItem[T](resp.Body)
}

// Update PUT {base}/update/:id. No compara con el valor previo: siempre envía la petición.
func (s *Resource[T, In]) Update(ctx context.Context, id string, in In) (*T, error) {
	resp, err := s.gw.Do(ctx, ports.Request{Method: http.MethodPut, Path: s.base + "/update/" + url.PathEscape(id), Body: in})
	if err != nil {
		return nil, err
	}
	return DecodeItem[T](resp.Body)
}

// Delete DELETE {base}/:id.
func (s *Resource[T, In]) Delete(ctx context.Context, id string) error {
	_, err := s.gw.Do(ctx, ports.Request{Method: http.MethodDelete, Path: s.base + "/" + url.PathEscape(id)})
	return err
}

func searchValues(q dto.ListQuery) url.Values {
	v := url.Values{}
	page := q.Page - 1
	if page < 0 {
		page = 0
	}
	v.Set("page", strconv.Itoa(page))
	if q.Size > 0 {
		v.Set("size", strconv.Itoa(q.Size))
	}
	if q.Keyword != "" {
		v.Set("keyword", q.Keyword)
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.From != "" {
		v.Set("from", q.From)
	}
	if q.To != "" {
		v.Set("to", q.To)
	}
	return v
}
