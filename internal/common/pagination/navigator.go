package pagination

import (
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names shared by every list endpoint.
const (
	ParamPage     = "page"
	ParamPageSize = "page_size"
	ParamSort     = "sort"
	ParamDir      = "dir"
	ParamSearch   = "q"
)

// ListNavigator builds outbound list links from a normalized request and
// the active search term. It is a value type; every link applies one change
// to a copy of the stored request.
//
// basePath serves ordinary navigation (a plain <a href>). fragmentPath serves
// hypermedia partial swaps and may end in "#target", e.g. "/roasters#roaster-list";
// the query string is inserted before the target.
type ListNavigator[K SortKey[K]] struct {
	basePath     string
	fragmentPath string
	request      ListRequest[K]
	search       string
}

// NewListNavigator returns a navigator for req. search is stored trimmed.
func NewListNavigator[K SortKey[K]](basePath, fragmentPath string, req ListRequest[K], search string) ListNavigator[K] {
	return ListNavigator[K]{
		basePath:     basePath,
		fragmentPath: fragmentPath,
		request:      req,
		search:       strings.TrimSpace(search),
	}
}

// Request returns the request the navigator was built from.
func (n ListNavigator[K]) Request() ListRequest[K] { return n.request }

// Search returns the active search term, "" when none.
func (n ListNavigator[K]) Search() string { return n.search }

// BasePath returns the full-page list path.
func (n ListNavigator[K]) BasePath() string { return n.basePath }

// Target returns the "#target" part of the fragment path, "" when absent.
func (n ListNavigator[K]) Target() string {
	if i := strings.IndexByte(n.fragmentPath, '#'); i >= 0 {
		return n.fragmentPath[i:]
	}
	return ""
}

// Query returns the query string of the current request.
func (n ListNavigator[K]) Query() string {
	return n.encode(n.request)
}

// Href returns the full-page URL of the current request.
func (n ListNavigator[K]) Href() string {
	return joinQuery(n.basePath, n.encode(n.request))
}

// FragmentHref returns the fragment URL of the current request.
func (n ListNavigator[K]) FragmentHref() string {
	return joinQuery(n.fragmentPath, n.encode(n.request))
}

// PageHref returns the full-page URL of page p, keeping sort, direction,
// page size and search.
func (n ListNavigator[K]) PageHref(p uint32) string {
	return joinQuery(n.basePath, n.encode(n.request.WithPage(p)))
}

// PageFragmentHref is PageHref on the fragment path.
func (n ListNavigator[K]) PageFragmentHref(p uint32) string {
	return joinQuery(n.fragmentPath, n.encode(n.request.WithPage(p)))
}

// SortHref returns the full-page URL for clicking the key's column header.
func (n ListNavigator[K]) SortHref(key K) string {
	return joinQuery(n.basePath, n.encode(n.request.WithSort(key)))
}

// SortFragmentHref is SortHref on the fragment path.
func (n ListNavigator[K]) SortFragmentHref(key K) string {
	return joinQuery(n.fragmentPath, n.encode(n.request.WithSort(key)))
}

// PageSizeHref returns the full-page URL for switching to size.
func (n ListNavigator[K]) PageSizeHref(size PageSize) string {
	return joinQuery(n.basePath, n.encode(n.request.WithPageSize(size)))
}

// PageSizeFragmentHref is PageSizeHref on the fragment path.
func (n ListNavigator[K]) PageSizeFragmentHref(size PageSize) string {
	return joinQuery(n.fragmentPath, n.encode(n.request.WithPageSize(size)))
}

// SortLink describes one sortable column header.
type SortLink struct {
	Label        string
	Key          string
	Href         string
	FragmentHref string
	Active       bool
	// Direction is the current direction when Active, "" otherwise.
	Direction SortDirection
}

// SortLinks returns one link per key, in the order given.
func (n ListNavigator[K]) SortLinks(keys []K, label func(K) string) []SortLink {
	links := make([]SortLink, 0, len(keys))
	for _, key := range keys {
		link := SortLink{
			Label:        label(key),
			Key:          key.QueryValue(),
			Href:         n.SortHref(key),
			FragmentHref: n.SortFragmentHref(key),
			Active:       key == n.request.SortKey(),
		}
		if link.Active {
			link.Direction = n.request.SortDirection()
		}
		links = append(links, link)
	}
	return links
}

func (n ListNavigator[K]) encode(req ListRequest[K]) string {
	v := url.Values{}
	v.Set(ParamPage, strconv.FormatUint(uint64(req.Page()), 10))
	v.Set(ParamPageSize, req.PageSize().QueryValue())
	v.Set(ParamSort, req.SortKey().QueryValue())
	v.Set(ParamDir, req.SortDirection().QueryValue())
	if n.search != "" {
		v.Set(ParamSearch, n.search)
	}
	return v.Encode()
}

// joinQuery puts query between path and an optional "#target" suffix.
func joinQuery(path, query string) string {
	target := ""
	if i := strings.IndexByte(path, '#'); i >= 0 {
		path, target = path[:i], path[i:]
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + query + target
}
