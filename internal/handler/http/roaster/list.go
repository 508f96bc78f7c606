package roaster

import (
	"context"
	"net/http"
	"time"

	"brewlog/internal/common/pagination"
	"brewlog/internal/domain/entity"
	"brewlog/internal/handler/http/respond"
	"brewlog/internal/observability/logging"
	"brewlog/internal/web"
)

const (
	listName     = "roasters"
	basePath     = "/roasters"
	listSelector = "#roaster-list"
	fragmentPath = basePath + listSelector
)

type ListHandler struct{ Deps }

// ServeHTTP ロースター一覧取得
//
// Answers a full HTML page, the #roaster-list fragment for hypermedia
// clients, or a paginated JSON document when the client accepts JSON.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()
	logger := logging.WithRequestID(ctx, h.logger())

	req, search, err := listRequest(r)
	if err != nil {
		logger.Warn("Invalid list parameters", "list", listName, "error", err.Error())
		pagination.RecordError(listName, "validation")
		respond.Fail(w, err)
		return
	}
	pagination.LogRequest(logger, listName, req, search)

	repoStart := time.Now()
	page, err := h.Svc.List(ctx, req, search)
	pagination.RecordDuration(listName, "repository", time.Since(repoStart).Seconds())
	if err != nil {
		pagination.LogError(logger, listName, req, err, "database")
		pagination.RecordError(listName, "database")
		respond.Fail(w, err)
		return
	}
	if page.Page != req.Page() {
		pagination.RecordClamped(listName)
	}

	resp, err := h.listResponse(r, req, search, page)
	if err != nil {
		pagination.LogError(logger, listName, req, err, "render")
		pagination.RecordError(listName, "render")
	}
	respond.Write(w, r, resp, err)

	duration := time.Since(startTime)
	status := respond.StatusFor(err)
	pagination.RecordDuration(listName, "handler", duration.Seconds())
	pagination.RecordRequest(listName, status, page.Window)
	pagination.LogResponse(logger, listName, page.Window, len(page.Items), duration, status)
}

// listRequest reads the list state from the query string. It is used by the
// list itself and by mutations, which refresh the list their form came from.
func listRequest(r *http.Request) (pagination.ListRequest[entity.RoasterSortKey], string, error) {
	q, err := pagination.ParseListQuery(r.URL.Query())
	if err != nil {
		return pagination.ListRequest[entity.RoasterSortKey]{}, "", respond.NewAppError(http.StatusBadRequest, err.Error(), nil)
	}
	req, search := pagination.IntoRequestAndSearch[entity.RoasterSortKey](q)
	return req, search, nil
}

func (d Deps) listResponse(r *http.Request, req pagination.ListRequest[entity.RoasterSortKey], search string, page pagination.Page[entity.Roaster]) (respond.Response, error) {
	hypermedia := respond.IsHypermedia(r)
	if !hypermedia && respond.AcceptsJSON(r) {
		return respond.JSONBody{
			Status: http.StatusOK,
			Body:   pagination.NewResponse(pagination.FromPage(page, toDTO)),
		}, nil
	}

	list := listView(req, search, page)
	if hypermedia {
		return d.fragment(list)
	}
	html, err := d.Views.Render("roasters/page", web.RoasterPage{List: list, ExtractEnabled: d.extractEnabled()})
	if err != nil {
		return nil, err
	}
	return respond.Document{Status: http.StatusOK, HTML: html}, nil
}

// listView builds the fragment data. Links are seeded from the request that
// describes the page actually returned.
func listView(req pagination.ListRequest[entity.RoasterSortKey], search string, page pagination.Page[entity.Roaster]) web.RoasterList {
	nav := pagination.NewListNavigator(basePath, fragmentPath, pagination.NormalizeRequest(req, page), search)
	rows := pagination.FromPage(page, toRow)
	return web.RoasterList{
		Rows:  rows.Items,
		Pager: web.NewPager(nav, rows, entity.RoasterSortKeys, entity.RoasterSortKey.Label),
	}
}

func (d Deps) fragment(list web.RoasterList) (respond.Fragment, error) {
	html, err := d.Views.Render("roasters/list", list)
	if err != nil {
		return respond.Fragment{}, err
	}
	return respond.Fragment{Selector: listSelector, Mode: respond.ModeReplace, HTML: html}, nil
}

// listMutation describes the answer to a write made from the list page:
// the refreshed list for hypermedia clients, the first page of the same list
// for forms, and status/body for JSON clients.
func (d Deps) listMutation(ctx context.Context, req pagination.ListRequest[entity.RoasterSortKey], search string, status int, body any) respond.Mutation {
	nav := pagination.NewListNavigator(basePath, fragmentPath, req, search)
	return respond.Mutation{
		Fragment: func() (respond.Fragment, error) {
			page, err := d.Svc.List(ctx, req, search)
			if err != nil {
				return respond.Fragment{}, err
			}
			return d.fragment(listView(req, search, page))
		},
		RedirectTo: nav.PageHref(1),
		Status:     status,
		Body:       body,
	}
}
