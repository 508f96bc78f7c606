// Package pagination implements the listing engine shared by every list
// endpoint: sort keys, page sizes, normalized list requests, repository pages
// and their view-mapped counterparts, and the navigator that builds outbound
// page and sort links.
package pagination
