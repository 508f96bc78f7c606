package web

import (
	"strconv"
	"strings"

	"brewlog/internal/common/pagination"
)

// PageSizeChoices are the page sizes offered under every list.
var PageSizeChoices = []pagination.PageSize{
	pagination.Limited(10),
	pagination.Limited(25),
	pagination.Limited(50),
	pagination.AllItems(),
}

// PageSizeLink is one entry of the page size switcher.
type PageSizeLink struct {
	Label        string
	Href         string
	FragmentHref string
	Active       bool
}

// Pager is the list chrome shared by every list fragment: sortable headers,
// search, pagination links and the page size switcher. All links are built
// from one normalized request so they agree with the rows shown.
type Pager struct {
	// ID is the element id of the list fragment, e.g. "roaster-list".
	ID string
	// Action is the list path, used by the search form.
	Action string
	// Query is the current list state.
	Query  string
	Search string
	// MutationHref is Action?Query; forms that change the list post here so
	// the refreshed list keeps its state.
	MutationHref string

	SortLinks []pagination.SortLink
	PageSizes []PageSizeLink

	Page       uint32
	TotalPages uint64
	Total      uint64
	Start      uint64
	End        uint64
	ShowingAll bool

	HasPrevious          bool
	PreviousHref         string
	PreviousFragmentHref string
	HasNext              bool
	NextHref             string
	NextFragmentHref     string
}

// NewPager builds the chrome for page. nav must be built from the request
// returned by pagination.NormalizeRequest.
func NewPager[K pagination.SortKey[K], V any](nav pagination.ListNavigator[K], page pagination.Paginated[V], keys []K, label func(K) string) Pager {
	p := Pager{
		ID:           strings.TrimPrefix(nav.Target(), "#"),
		Action:       nav.BasePath(),
		Query:        nav.Query(),
		Search:       nav.Search(),
		MutationHref: nav.Href(),
		SortLinks:    nav.SortLinks(keys, label),
		Page:         page.Page,
		TotalPages:   page.TotalPages(),
		Total:        page.Total,
		Start:        page.StartIndex(),
		End:          page.EndIndex(),
		ShowingAll:   page.ShowingAll,
		HasPrevious:  page.HasPrevious(),
		HasNext:      page.HasNext(),
	}
	if p.HasPrevious {
		p.PreviousHref = nav.PageHref(page.PreviousPage())
		p.PreviousFragmentHref = nav.PageFragmentHref(page.PreviousPage())
	}
	if p.HasNext {
		p.NextHref = nav.PageHref(page.NextPage())
		p.NextFragmentHref = nav.PageFragmentHref(page.NextPage())
	}

	current := nav.Request().PageSize()
	for _, size := range PageSizeChoices {
		label := "All"
		if n, ok := size.Limit(); ok {
			label = strconv.FormatUint(uint64(n), 10)
		}
		p.PageSizes = append(p.PageSizes, PageSizeLink{
			Label:        label,
			Href:         nav.PageSizeHref(size),
			FragmentHref: nav.PageSizeFragmentHref(size),
			Active:       size == current,
		})
	}
	return p
}
