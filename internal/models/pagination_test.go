package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults", 0, 0, 1, 10},
		{"negative values", -3, -1, 1, 10},
		{"in range", 2, 25, 2, 25},
		{"limit at ceiling", 1, 50, 1, 50},
		{"limit above ceiling clamps to 50", 1, 999, 1, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	assert.Equal(t, 0, NewPagination(1, 10).Offset())
	assert.Equal(t, 10, NewPagination(2, 10).Offset())
	assert.Equal(t, 100, NewPagination(3, 50).Offset())
}
