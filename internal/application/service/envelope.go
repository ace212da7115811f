package service

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/assettrack-console/internal/application/dto"
)

// envelope reúne las claves con las que el backend envuelve sus listados según el endpoint:
// {data: [...]}, {data: {content, totalElements}}, {content, totalElements} o {items, total}.
type envelope struct {
	Data          json.RawMessage `json:"data"`
	Content       json.RawMessage `json:"content"`
	TotalElements *int            `json:"totalElements"`
	Items         json.RawMessage `json:"items"`
	Total         *int            `json:"total"`
}

// DecodePage normaliza cualquier forma de listado del backend a dto.Page[T].
// Si el backend no informa el total se usa la cantidad de elementos recibidos.
func DecodePage[T any](raw []byte) (dto.Page[T], error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return dto.Page[T]{Items: []T{}}, nil
	}
	if raw[0] == '[' {
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return dto.Page[T]{}, fmt.Errorf("listado: deserializar arreglo: %w", err)
		}
		return dto.Page[T]{Items: nonNil(items), Total: len(items)}, nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return dto.Page[T]{}, fmt.Errorf("listado: deserializar sobre: %w", err)
	}

	var page dto.Page[T]
	switch {
	case len(env.Data) > 0:
		inner, err := DecodePage[T](env.Data)
		if err != nil {
			return dto.Page[T]{}, err
		}
		page = inner
	case len(env.Content) > 0:
		inner, err := DecodePage[T](env.Content)
		if err != nil {
			return dto.Page[T]{}, err
		}
		page = inner
	case len(env.Items) > 0:
		inner, err := DecodePage[T](env.Items)
		if err != nil {
			return dto.Page[T]{}, err
		}
		page = inner
	default:
		return dto.Page[T]{}, fmt.Errorf("listado: forma de respuesta desconocida")
	}

	switch {
	case env.TotalElements != nil:
		page.Total = *env.TotalElements
	case env.Total != nil:
		page.Total = *env.Total
	}
	return page, nil
}

// DecodeItem deserializa un registro que puede venir directo o envuelto en {data: {...}}.
func DecodeItem[T any](raw []byte) (*T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	var wrapped struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && len(wrapped.Data) > 0 && wrapped.Data[0] == '{' {
		raw = wrapped.Data
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("registro: deserializar: %w", err)
	}
	return &out, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
