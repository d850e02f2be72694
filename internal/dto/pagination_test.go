package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination_FirstPage(t *testing.T) {
	p := NewPagination(25, 1, 10)

	assert.Equal(t, int64(25), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	require.NotNil(t, p.Next)
	assert.Equal(t, 2, *p.Next)
	assert.Nil(t, p.Previous)
}

func TestNewPagination_LastPage(t *testing.T) {
	p := NewPagination(25, 3, 10)

	assert.Nil(t, p.Next)
	require.NotNil(t, p.Previous)
	assert.Equal(t, 2, *p.Previous)
}

func TestNewPagination_SinglePage(t *testing.T) {
	p := NewPagination(4, 1, 10)

	assert.Equal(t, 1, p.TotalPages)
	assert.Nil(t, p.Next)
	assert.Nil(t, p.Previous)
}

func TestNewPagination_Empty(t *testing.T) {
	p := NewPagination(0, 1, 10)

	assert.Equal(t, 0, p.TotalPages)
	assert.Nil(t, p.Next)
	assert.Nil(t, p.Previous)
}

func TestListParamsNormalize(t *testing.T) {
	tests := []struct {
		name              string
		in                ListParams
		wantPage          int
		wantLimit, wantOf int
	}{
		{"defaults", ListParams{}, 1, 10, 0},
		{"negative values floored", ListParams{Page: -3, Limit: -1}, 1, 10, 0},
		{"explicit values kept", ListParams{Page: 3, Limit: 25}, 3, 25, 50},
		{"limit capped", ListParams{Page: 1, Limit: 1000}, 1, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Normalize()
			assert.Equal(t, tt.wantPage, tt.in.Page)
			assert.Equal(t, tt.wantLimit, tt.in.Limit)
			assert.Equal(t, tt.wantOf, tt.in.Offset())
		})
	}
}
