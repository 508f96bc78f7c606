package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"brewlog/internal/common/pagination"
)

func TestNewListRequest_Clamps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		page     uint32
		size     pagination.PageSize
		wantPage uint32
		wantSize pagination.PageSize
	}{
		{name: "page zero becomes one", page: 0, size: pagination.Limited(10), wantPage: 1, wantSize: pagination.Limited(10)},
		{name: "size above max", page: 2, size: pagination.Limited(500), wantPage: 2, wantSize: pagination.Limited(pagination.MaxPageSize)},
		{name: "size at max", page: 1, size: pagination.Limited(50), wantPage: 1, wantSize: pagination.Limited(50)},
		{name: "size one", page: 1, size: pagination.Limited(1), wantPage: 1, wantSize: pagination.Limited(1)},
		{name: "limited zero is all", page: 3, size: pagination.Limited(0), wantPage: 3, wantSize: pagination.AllItems()},
		{name: "all", page: 7, size: pagination.AllItems(), wantPage: 7, wantSize: pagination.AllItems()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := req(tt.page, tt.size, keyName, pagination.SortAsc)
			assert.Equal(t, tt.wantPage, r.Page())
			assert.Equal(t, tt.wantSize, r.PageSize())
			assert.GreaterOrEqual(t, r.Page(), uint32(1))
			if n, ok := r.PageSize().Limit(); ok {
				assert.LessOrEqual(t, n, pagination.MaxPageSize)
			}
		})
	}
}

func TestNewListRequest_InvalidDirectionUsesKeyDefault(t *testing.T) {
	t.Parallel()

	r := req(1, pagination.Limited(10), keyCreatedAt, pagination.SortDirection("sideways"))
	assert.Equal(t, pagination.SortDesc, r.SortDirection())
}

func TestDefaultListRequest(t *testing.T) {
	t.Parallel()

	r := pagination.DefaultListRequest[testKey]()
	assert.Equal(t, uint32(1), r.Page())
	assert.Equal(t, pagination.Limited(pagination.DefaultPageSize), r.PageSize())
	assert.Equal(t, keyName, r.SortKey())
	assert.Equal(t, pagination.SortAsc, r.SortDirection())
	assert.False(t, r.ShowingAll())
}

func TestListRequest_EnsurePageWithin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		page  uint32
		size  pagination.PageSize
		total uint64
		want  uint32
	}{
		{name: "beyond last page", page: 99, size: pagination.Limited(10), total: 95, want: 10},
		{name: "on last page", page: 10, size: pagination.Limited(10), total: 95, want: 10},
		{name: "inside range", page: 4, size: pagination.Limited(10), total: 95, want: 4},
		{name: "page zero", page: 0, size: pagination.Limited(10), total: 95, want: 1},
		{name: "empty result", page: 5, size: pagination.Limited(10), total: 0, want: 1},
		{name: "all items", page: 5, size: pagination.AllItems(), total: 95, want: 1},
		{name: "exact multiple", page: 3, size: pagination.Limited(25), total: 50, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := req(tt.page, tt.size, keyName, pagination.SortAsc).EnsurePageWithin(tt.total)
			assert.Equal(t, tt.want, r.Page())
		})
	}
}

func TestListRequest_EnsurePageWithin_KeepsSortAndSize(t *testing.T) {
	t.Parallel()

	r := req(99, pagination.Limited(20), keyOrigin, pagination.SortDesc).EnsurePageWithin(41)
	assert.Equal(t, uint32(3), r.Page())
	assert.Equal(t, pagination.Limited(20), r.PageSize())
	assert.Equal(t, keyOrigin, r.SortKey())
	assert.Equal(t, pagination.SortDesc, r.SortDirection())
}

func TestListRequest_WithSort(t *testing.T) {
	t.Parallel()

	base := req(3, pagination.Limited(20), keyName, pagination.SortAsc)

	t.Run("same key flips direction", func(t *testing.T) {
		t.Parallel()
		r := base.WithSort(keyName)
		assert.Equal(t, keyName, r.SortKey())
		assert.Equal(t, pagination.SortDesc, r.SortDirection())
		assert.Equal(t, uint32(3), r.Page())
	})

	t.Run("twice restores the request", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, base, base.WithSort(keyName).WithSort(keyName))
	})

	t.Run("other key uses its natural direction", func(t *testing.T) {
		t.Parallel()
		r := base.WithSort(keyCreatedAt)
		assert.Equal(t, keyCreatedAt, r.SortKey())
		assert.Equal(t, pagination.SortDesc, r.SortDirection())

		r = base.WithSort(keyOrigin)
		assert.Equal(t, pagination.SortAsc, r.SortDirection())
	})

	t.Run("receiver unchanged", func(t *testing.T) {
		t.Parallel()
		_ = base.WithSort(keyOrigin)
		assert.Equal(t, keyName, base.SortKey())
		assert.Equal(t, pagination.SortAsc, base.SortDirection())
	})
}

func TestListRequest_WithPageAndWithPageSize(t *testing.T) {
	t.Parallel()

	base := req(3, pagination.Limited(20), keyOrigin, pagination.SortDesc)

	p := base.WithPage(7)
	assert.Equal(t, uint32(7), p.Page())
	assert.Equal(t, pagination.Limited(20), p.PageSize())
	assert.Equal(t, keyOrigin, p.SortKey())

	assert.Equal(t, uint32(1), base.WithPage(0).Page())

	s := base.WithPageSize(pagination.AllItems())
	assert.Equal(t, uint32(1), s.Page())
	assert.True(t, s.ShowingAll())
	assert.Equal(t, pagination.SortDesc, s.SortDirection())

	assert.Equal(t, pagination.Limited(pagination.MaxPageSize), base.WithPageSize(pagination.Limited(999)).PageSize())
}

func TestListRequest_Offset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(0), req(1, pagination.Limited(10), keyName, pagination.SortAsc).Offset())
	assert.Equal(t, uint64(40), req(3, pagination.Limited(20), keyName, pagination.SortAsc).Offset())
	assert.Equal(t, uint64(0), req(9, pagination.AllItems(), keyName, pagination.SortAsc).Offset())
}
