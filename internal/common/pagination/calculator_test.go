package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"brewlog/internal/common/pagination"
)

func TestCalculateOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		page  uint32
		limit uint32
		want  uint64
	}{
		{name: "first page", page: 1, limit: 10, want: 0},
		{name: "second page", page: 2, limit: 10, want: 10},
		{name: "third page with limit 25", page: 3, limit: 25, want: 50},
		{name: "page 10 with limit 50", page: 10, limit: 50, want: 450},
		{name: "page zero is treated as first", page: 0, limit: 10, want: 0},
		{name: "large page number", page: 4_000_000_000, limit: 50, want: 199_999_999_950},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pagination.CalculateOffset(tt.page, tt.limit))
		})
	}
}

func TestCalculateTotalPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		total uint64
		limit uint32
		want  uint64
	}{
		{name: "zero total", total: 0, limit: 10, want: 1},
		{name: "total less than limit", total: 3, limit: 10, want: 1},
		{name: "total equals limit", total: 10, limit: 10, want: 1},
		{name: "one over limit", total: 11, limit: 10, want: 2},
		{name: "ninety five items", total: 95, limit: 10, want: 10},
		{name: "exact multiple", total: 100, limit: 50, want: 2},
		{name: "zero limit", total: 100, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pagination.CalculateTotalPages(tt.total, tt.limit))
		})
	}
}
