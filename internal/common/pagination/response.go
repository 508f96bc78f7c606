package pagination

// Response is a generic paginated response wrapper.
// T is the type of data items (e.g., RoasterDTO, RoastDTO).
//
// Example usage:
//
//	paginated := pagination.FromPage(page, toDTO)
//	response := pagination.NewResponse(paginated)
//	// response is of type pagination.Response[RoasterDTO]
type Response[T any] struct {
	Data       []T      `json:"data"`       // Array of data items for the current page
	Pagination Metadata `json:"pagination"` // Pagination metadata (total, page, page_size, etc.)
}

// NewResponse creates a paginated JSON response from mapped items.
func NewResponse[T any](p Paginated[T]) Response[T] {
	data := p.Items
	if data == nil {
		data = []T{}
	}
	return Response[T]{
		Data:       data,
		Pagination: p.Metadata(),
	}
}
