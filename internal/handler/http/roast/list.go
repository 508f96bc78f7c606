package roast

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"brewlog/internal/common/pagination"
	"brewlog/internal/domain/entity"
	"brewlog/internal/handler/http/respond"
	"brewlog/internal/observability/logging"
	"brewlog/internal/repository"
	"brewlog/internal/web"
)

const (
	listName     = "roasts"
	basePath     = "/roasts"
	listSelector = "#roast-list"
)

type ListHandler struct{ Deps }

// ServeHTTP ロースト一覧取得
//
// The full page also needs every roaster for the new roast form; both
// queries run concurrently.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()
	logger := logging.WithRequestID(ctx, h.logger())

	req, search, filter, err := listRequest(r)
	if err != nil {
		logger.Warn("Invalid list parameters", "list", listName, "error", err.Error())
		pagination.RecordError(listName, "validation")
		respond.Fail(w, err)
		return
	}
	pagination.LogRequest(logger, listName, req, search)

	hypermedia := respond.IsHypermedia(r)
	asJSON := !hypermedia && respond.AcceptsJSON(r)
	fullPage := !hypermedia && !asJSON

	var (
		page     pagination.Page[entity.RoastWithRoaster]
		roasters []entity.Roaster
	)
	repoStart := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page, err = h.Svc.List(gctx, filter, req, search)
		return err
	})
	if fullPage {
		g.Go(func() error {
			var err error
			roasters, err = h.Roasters.All(gctx)
			return err
		})
	}
	err = g.Wait()
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

	var resp respond.Response
	switch {
	case asJSON:
		resp = respond.JSONBody{
			Status: http.StatusOK,
			Body:   pagination.NewResponse(pagination.FromPage(page, listDTO)),
		}
	case hypermedia:
		resp, err = h.fragment(listView(filter, req, search, page))
	default:
		resp, err = h.document(listView(filter, req, search, page), roasters)
	}
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

// listRequest reads the list state and the optional roaster_id filter.
func listRequest(r *http.Request) (pagination.ListRequest[entity.RoastSortKey], string, repository.RoastFilter, error) {
	values := r.URL.Query()
	q, err := pagination.ParseListQuery(values)
	if err != nil {
		return pagination.ListRequest[entity.RoastSortKey]{}, "", repository.RoastFilter{}, respond.NewAppError(http.StatusBadRequest, err.Error(), nil)
	}

	var filter repository.RoastFilter
	if raw := strings.TrimSpace(values.Get("roaster_id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return pagination.ListRequest[entity.RoastSortKey]{}, "", repository.RoastFilter{}, respond.NewAppError(http.StatusBadRequest, "invalid query parameter: roaster_id must be a positive integer", nil)
		}
		filter.RoasterID = id
	}

	req, search := pagination.IntoRequestAndSearch[entity.RoastSortKey](q)
	return req, search, filter, nil
}

// listPath keeps the roaster filter on every generated link.
func listPath(filter repository.RoastFilter) string {
	if filter.RoasterID == 0 {
		return basePath
	}
	return basePath + "?roaster_id=" + strconv.FormatInt(filter.RoasterID, 10)
}

func listView(filter repository.RoastFilter, req pagination.ListRequest[entity.RoastSortKey], search string, page pagination.Page[entity.RoastWithRoaster]) web.RoastList {
	path := listPath(filter)
	nav := pagination.NewListNavigator(path, path+listSelector, pagination.NormalizeRequest(req, page), search)
	rows := pagination.FromPage(page, toRow)
	return web.RoastList{
		Rows:  rows.Items,
		Pager: web.NewPager(nav, rows, entity.RoastSortKeys, entity.RoastSortKey.Label),
	}
}

func (d Deps) fragment(list web.RoastList) (respond.Response, error) {
	html, err := d.Views.Render("roasts/list", list)
	if err != nil {
		return nil, err
	}
	return respond.Fragment{Selector: listSelector, Mode: respond.ModeReplace, HTML: html}, nil
}

func (d Deps) document(list web.RoastList, roasters []entity.Roaster) (respond.Response, error) {
	options := make([]web.RoasterOption, 0, len(roasters))
	for _, r := range roasters {
		options = append(options, web.RoasterOption{ID: r.ID, Name: r.Name})
	}
	html, err := d.Views.Render("roasts/page", web.RoastPage{List: list, Roasters: options})
	if err != nil {
		return nil, err
	}
	return respond.Document{Status: http.StatusOK, HTML: html}, nil
}
