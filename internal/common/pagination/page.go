package pagination

// Window is the pagination shape shared by Page and Paginated.
// PageSize stays positive even when ShowingAll is set so display math never
// divides by zero.
type Window struct {
	Page       uint32
	PageSize   uint32
	Total      uint64
	ShowingAll bool
}

// TotalPages returns the number of pages; an empty or "all" result has one.
func (w Window) TotalPages() uint64 {
	if w.Total == 0 || w.ShowingAll {
		return 1
	}
	return CalculateTotalPages(w.Total, w.PageSize)
}

// HasPrevious reports whether a previous page exists.
func (w Window) HasPrevious() bool {
	return !w.ShowingAll && w.Page > 1
}

// HasNext reports whether a following page exists.
func (w Window) HasNext() bool {
	return !w.ShowingAll && uint64(w.Page) < w.TotalPages()
}

// PreviousPage returns the page before the current one, never below 1.
func (w Window) PreviousPage() uint32 {
	if w.Page <= 1 {
		return 1
	}
	return w.Page - 1
}

// NextPage returns the page after the current one, never beyond the last page.
func (w Window) NextPage() uint32 {
	if !w.HasNext() {
		return w.Page
	}
	return w.Page + 1
}

// startIndex is the 1-based position of the first item on the page.
func (w Window) startIndex() uint64 {
	if w.Total == 0 {
		return 0
	}
	page := max(w.Page, 1)
	return uint64(page-1)*uint64(w.PageSize) + 1
}

// endIndex is the 1-based position of the last of count items on the page.
func (w Window) endIndex(count int) uint64 {
	if w.Total == 0 || count == 0 {
		return 0
	}
	return w.startIndex() + uint64(count) - 1
}

// Metadata returns the JSON pagination block for the window.
func (w Window) Metadata() Metadata {
	return Metadata{
		Total:       w.Total,
		Page:        w.Page,
		PageSize:    w.PageSize,
		TotalPages:  w.TotalPages(),
		ShowingAll:  w.ShowingAll,
		HasPrevious: w.HasPrevious(),
		HasNext:     w.HasNext(),
	}
}

// Page is a repository result: one slice of items plus the total count of
// matching items.
type Page[T any] struct {
	Window
	Items []T
}

// NewPage builds the page a repository returns for req. req must already be
// clamped with EnsurePageWithin(total).
func NewPage[T any, K SortKey[K]](items []T, req ListRequest[K], total uint64) Page[T] {
	if items == nil {
		items = []T{}
	}
	w := Window{Page: req.Page(), Total: total}
	if limit, ok := req.PageSize().Limit(); ok {
		w.PageSize = limit
	} else {
		w.ShowingAll = true
		w.PageSize = uint32(max(len(items), 1))
	}
	return Page[T]{Window: w, Items: items}
}

// StartIndex returns the 1-based position of the first item, 0 when empty.
func (p Page[T]) StartIndex() uint64 { return p.startIndex() }

// EndIndex returns the 1-based position of the last item, 0 when empty.
func (p Page[T]) EndIndex() uint64 { return p.endIndex(len(p.Items)) }

// Paginated is a Page whose items were mapped into view values.
type Paginated[V any] struct {
	Window
	Items []V
}

// FromPage maps every item through mapper and keeps the page shape.
func FromPage[T, V any](page Page[T], mapper func(T) V) Paginated[V] {
	items := make([]V, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, mapper(item))
	}
	return Paginated[V]{Window: page.Window, Items: items}
}

// StartIndex returns the 1-based position of the first item, 0 when empty.
func (p Paginated[V]) StartIndex() uint64 { return p.startIndex() }

// EndIndex returns the 1-based position of the last item, 0 when empty.
func (p Paginated[V]) EndIndex() uint64 { return p.endIndex(len(p.Items)) }

// NormalizeRequest rebuilds req so that it describes the page that was
// actually returned: its page number, and AllItems or the returned page size.
// Navigation links must be seeded from the normalized request.
func NormalizeRequest[K SortKey[K], T any](req ListRequest[K], page Page[T]) ListRequest[K] {
	size := Limited(page.PageSize)
	if page.ShowingAll {
		size = AllItems()
	}
	return NewListRequest(page.Page, size, req.SortKey(), req.SortDirection())
}
