package pagination

// ListRequest is a normalized list request. Every constructor clamps its
// inputs, so a ListRequest never holds page 0 or a page size above
// MaxPageSize. Methods return modified copies; the receiver is never changed.
type ListRequest[K SortKey[K]] struct {
	page      uint32
	pageSize  PageSize
	sortKey   K
	direction SortDirection
}

// NewListRequest builds a request, clamping page to at least 1 and a limited
// page size into [1, MaxPageSize]. Limited(0) becomes AllItems. The sort key
// and direction are stored as given.
func NewListRequest[K SortKey[K]](page uint32, pageSize PageSize, key K, dir SortDirection) ListRequest[K] {
	if page < 1 {
		page = 1
	}
	if dir != SortAsc && dir != SortDesc {
		dir = key.DefaultDirection()
	}
	return ListRequest[K]{
		page:      page,
		pageSize:  pageSize.clamp(),
		sortKey:   key,
		direction: dir,
	}
}

// DefaultListRequest returns page 1 with the default page size, sorted by
// K's default key in its natural direction.
func DefaultListRequest[K SortKey[K]]() ListRequest[K] {
	key := DefaultSortKey[K]()
	return NewListRequest(1, Limited(DefaultPageSize), key, key.DefaultDirection())
}

// Page returns the 1-based page number.
func (r ListRequest[K]) Page() uint32 { return r.page }

// PageSize returns the page size.
func (r ListRequest[K]) PageSize() PageSize { return r.pageSize }

// SortKey returns the sort key.
func (r ListRequest[K]) SortKey() K { return r.sortKey }

// SortDirection returns the sort direction.
func (r ListRequest[K]) SortDirection() SortDirection { return r.direction }

// ShowingAll reports whether the request asks for every item.
func (r ListRequest[K]) ShowingAll() bool { return r.pageSize.IsAll() }

// WithSort returns the request re-sorted by key. Choosing the current key
// flips the direction; choosing another key resets to that key's natural
// direction. The page is kept.
func (r ListRequest[K]) WithSort(key K) ListRequest[K] {
	dir := key.DefaultDirection()
	if key == r.sortKey {
		dir = r.direction.Opposite()
	}
	return NewListRequest(r.page, r.pageSize, key, dir)
}

// WithPage returns the request pointed at another page.
func (r ListRequest[K]) WithPage(page uint32) ListRequest[K] {
	return NewListRequest(page, r.pageSize, r.sortKey, r.direction)
}

// WithPageSize returns the request with another page size, back on page 1.
func (r ListRequest[K]) WithPageSize(size PageSize) ListRequest[K] {
	return NewListRequest(1, size, r.sortKey, r.direction)
}

// EnsurePageWithin clamps the page to the last page that exists for total
// items. An "all" request, or an empty result, always lands on page 1.
func (r ListRequest[K]) EnsurePageWithin(total uint64) ListRequest[K] {
	limit, ok := r.pageSize.Limit()
	if !ok || total == 0 {
		r.page = 1
		return r
	}
	lastPage := CalculateTotalPages(total, limit)
	if uint64(r.page) > lastPage {
		r.page = uint32(lastPage)
	}
	return r
}

// Offset returns the number of items that precede the requested page.
// It is 0 for an "all" request.
func (r ListRequest[K]) Offset() uint64 {
	limit, ok := r.pageSize.Limit()
	if !ok {
		return 0
	}
	return CalculateOffset(r.page, limit)
}
