package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/assettrack-console/internal/application/service"
	"github.com/jhoicas/assettrack-console/internal/domain/entity"
)

func TestDecodePage_FormasDelBackend(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		total int
		items int
	}{
		{"arreglo plano", `[{"id":1},{"id":2}]`, 2, 2},
		{"data arreglo", `{"data":[{"id":1}]}`, 1, 1},
		{"data paginado", `{"data":{"content":[{"id":1},{"id":2}],"totalElements":42}}`, 42, 2},
		{"content paginado", `{"content":[{"id":3}],"totalElements":7}`, 7, 1},
		{"items total", `{"items":[{"id":3}],"total":9}`, 9, 1},
		{"vacío", `{"content":[],"totalElements":0}`, 0, 0},
		{"null", `null`, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, err := service.DecodePage[entity.Stack]([]byte(tc.raw))
			require.NoError(t, err)
			assert.Equal(t, tc.total, page.Total)
			assert.Len(t, page.Items, tc.items)
			assert.NotNil(t, page.Items)
		})
	}
}

func TestDecodePage_FormaDesconocida(t *testing.T) {
	_, err := service.DecodePage[entity.Stack]([]byte(`{"rows":[]}`))
	assert.Error(t, err)
}

func TestDecodeItem_DirectoYEnvuelto(t *testing.T) {
	s, err := service.DecodeItem[entity.Stack]([]byte(`{"id":5,"warehouse":"WH1"}`))
	require.NoError(t, err)
	assert.Equal(t, int64(5), s.ID)

	s, err = service.DecodeItem[entity.Stack]([]byte(`{"data":{"id":6,"warehouse":"WH2"}}`))
	require.NoError(t, err)
	assert.Equal(t, "WH2", s.Warehouse)

	s, err = service.DecodeItem[entity.Stack]([]byte(``))
	require.NoError(t, err)
	assert.Nil(t, s)
}
