package pagination

// Metadata contains pagination metadata included in API responses.
type Metadata struct {
	Total       uint64 `json:"total"`        // Total number of items across all pages
	Page        uint32 `json:"page"`         // Current page number (1-based)
	PageSize    uint32 `json:"page_size"`    // Items per page
	TotalPages  uint64 `json:"total_pages"`  // Calculated total number of pages
	ShowingAll  bool   `json:"showing_all"`  // Every matching item is on this page
	HasPrevious bool   `json:"has_previous"` // A previous page exists
	HasNext     bool   `json:"has_next"`     // A following page exists
}
