package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/assettrack-console/internal/application/dto"
)

func TestListQuery_Normalize(t *testing.T) {
	q := dto.ListQuery{Page: 0, Size: 0, Keyword: "  WH1 "}.Normalize(10)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Size)
	assert.Equal(t, "WH1", q.Keyword)
	assert.Equal(t, 0, q.Offset())

	q = dto.ListQuery{Page: 3, Size: 500}.Normalize(10)
	assert.Equal(t, dto.MaxPageSize, q.Size)
	assert.Equal(t, 200, q.Offset())
}

func TestPage_Pages(t *testing.T) {
	assert.Equal(t, 1, dto.Page[int]{Total: 0}.Pages(10))
	assert.Equal(t, 1, dto.Page[int]{Total: 10}.Pages(10))
	assert.Equal(t, 3, dto.Page[int]{Total: 21}.Pages(10))
}
