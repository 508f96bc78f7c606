package pagination

// CalculateOffset calculates the database OFFSET value based on page number and limit.
// Page numbers are 1-based, so page 1 has offset 0.
//
// Formula: offset = (page - 1) * limit
//
// Examples:
//   - Page 1, Limit 10 -> Offset 0
//   - Page 2, Limit 10 -> Offset 10
//   - Page 3, Limit 25 -> Offset 50
func CalculateOffset(page, limit uint32) uint64 {
	if page < 1 {
		return 0
	}
	return uint64(page-1) * uint64(limit)
}

// CalculateTotalPages calculates the total number of pages based on total items and limit.
// Uses ceiling division to ensure all items are included.
//
// Special cases:
//   - If total is 0, returns 1 (always at least 1 page)
//   - If limit is 0, returns 1 (an unbounded page holds everything)
//   - Otherwise, returns ceil(total / limit)
//
// Examples:
//   - Total 0, Limit 10 -> 1 page
//   - Total 10, Limit 10 -> 1 page
//   - Total 11, Limit 10 -> 2 pages
//   - Total 95, Limit 10 -> 10 pages
func CalculateTotalPages(total uint64, limit uint32) uint64 {
	if total == 0 || limit == 0 {
		return 1 // Always at least 1 page
	}
	// Ceiling division: (total + limit - 1) / limit
	return (total + uint64(limit) - 1) / uint64(limit)
}
