package roast_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewlog/internal/common/pagination"
	"brewlog/internal/domain/entity"
	"brewlog/internal/handler/http/respond"
	"brewlog/internal/handler/http/roast"
	"brewlog/internal/repository"
	roastUC "brewlog/internal/usecase/roast"
	roasterUC "brewlog/internal/usecase/roaster"
	"brewlog/internal/web"
)

/* ───────── スタブ ───────── */

type memRoasts struct {
	rows       []entity.RoastWithRoaster
	nextID     int64
	lastFilter repository.RoastFilter
	listErr    error
}

func (m *memRoasts) Get(_ context.Context, id int64) (*entity.RoastWithRoaster, error) {
	for _, r := range m.rows {
		if r.ID == id {
			cp := r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memRoasts) List(_ context.Context, filter repository.RoastFilter, req pagination.ListRequest[entity.RoastSortKey], _ string) (pagination.Page[entity.RoastWithRoaster], error) {
	m.lastFilter = filter
	if m.listErr != nil {
		return pagination.Page[entity.RoastWithRoaster]{}, m.listErr
	}
	var items []entity.RoastWithRoaster
	for _, r := range m.rows {
		if filter.RoasterID == 0 || r.RoasterID == filter.RoasterID {
			items = append(items, r)
		}
	}
	total := uint64(len(items))
	req = req.EnsurePageWithin(total)
	if limit, ok := req.PageSize().Limit(); ok {
		start := min(req.Offset(), total)
		end := min(start+uint64(limit), total)
		items = items[start:end]
	}
	return pagination.NewPage(items, req, total), nil
}

func (m *memRoasts) Create(_ context.Context, r *entity.Roast) error {
	m.nextID++
	r.ID = m.nextID
	r.CreatedAt = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	m.rows = append(m.rows, entity.RoastWithRoaster{Roast: *r})
	return nil
}

func (m *memRoasts) Delete(_ context.Context, id int64) error {
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return entity.ErrNotFound
}

func (m *memRoasts) CountByRoaster(_ context.Context, id int64) (int64, error) {
	var n int64
	for _, r := range m.rows {
		if r.RoasterID == id {
			n++
		}
	}
	return n, nil
}

// fixedRoasters answers Get and List from a fixed set and counts List calls.
type fixedRoasters struct {
	repository.RoasterRepository
	rows  []entity.Roaster
	lists atomic.Int32
}

func (f *fixedRoasters) Get(_ context.Context, id int64) (*entity.Roaster, error) {
	for _, r := range f.rows {
		if r.ID == id {
			cp := r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fixedRoasters) List(_ context.Context, req pagination.ListRequest[entity.RoasterSortKey], _ string) (pagination.Page[entity.Roaster], error) {
	f.lists.Add(1)
	return pagination.NewPage(f.rows, req.EnsurePageWithin(uint64(len(f.rows))), uint64(len(f.rows))), nil
}

/* ───────── ヘルパー ───────── */

type fixture struct {
	mux      *http.ServeMux
	roasts   *memRoasts
	roasters *fixedRoasters
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		mux:    http.NewServeMux(),
		roasts: &memRoasts{},
		roasters: &fixedRoasters{rows: []entity.Roaster{
			{ID: 1, Name: "Onyx"},
			{ID: 2, Name: "La Cabra"},
		}},
	}
	for _, r := range []entity.Roast{
		{RoasterID: 1, Name: "Geometry"},
		{RoasterID: 1, Name: "Southern Weather"},
		{RoasterID: 2, Name: "Halo Beriti"},
	} {
		require.NoError(t, f.roasts.Create(context.Background(), &r))
	}
	for i := range f.roasts.rows {
		f.roasts.rows[i].RoasterName = map[int64]string{1: "Onyx", 2: "La Cabra"}[f.roasts.rows[i].RoasterID]
	}

	roast.Register(f.mux, roast.Deps{
		Svc:      &roastUC.Service{Roasts: f.roasts, Roasters: f.roasters},
		Roasters: &roasterUC.Service{Roasters: f.roasters, Roasts: f.roasts},
		Views:    web.MustNewRenderer(),
	})
	return f
}

func (f *fixture) do(method, target, contentType, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	f.mux.ServeHTTP(rr, req)
	return rr
}

var hypermedia = map[string]string{respond.HeaderHypermediaRequest: "true"}

func document(t *testing.T, rr *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rr.Body)
	require.NoError(t, err)
	return doc
}

/* ───────── 一覧 ───────── */

func TestList_FullPageLoadsRoasterOptions(t *testing.T) {
	f := newFixture(t)

	rr := f.do(http.MethodGet, "/roasts", "", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int32(1), f.roasters.lists.Load())

	doc := document(t, rr)
	assert.Equal(t, 3, doc.Find("#roast-list tr.roast").Length())
	options := doc.Find("form.roast-form select[name=roaster_id] option").
		FilterFunction(func(_ int, s *goquery.Selection) bool { return s.AttrOr("value", "") != "" }).
		Map(func(_ int, s *goquery.Selection) string { return s.Text() })
	assert.Equal(t, []string{"Onyx", "La Cabra"}, options)
}

func TestList_FragmentSkipsRoasterOptions(t *testing.T) {
	f := newFixture(t)

	rr := f.do(http.MethodGet, "/roasts?page_size=2", "", "", hypermedia)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int32(0), f.roasters.lists.Load())
	assert.Equal(t, "#roast-list", rr.Header().Get(respond.HeaderSelector))

	doc := document(t, rr)
	assert.Equal(t, 2, doc.Find("div#roast-list tr.roast").Length())
	next := doc.Find("a.pager-next").AttrOr("href", "")
	assert.Equal(t, "/roasts?dir=desc&page=2&page_size=2&sort=created-at", next)
}

func TestList_RoasterFilterKeptOnLinks(t *testing.T) {
	f := newFixture(t)

	rr := f.do(http.MethodGet, "/roasts?roaster_id=1&page_size=1", "", "", hypermedia)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(1), f.roasts.lastFilter.RoasterID)

	doc := document(t, rr)
	next := doc.Find("a.pager-next").AttrOr("href", "")
	assert.True(t, strings.HasPrefix(next, "/roasts?roaster_id=1&"), next)
	assert.Contains(t, doc.Find("a.pager-next").AttrOr("data-on-click__prevent", ""), "#roast-list")
}

func TestList_JSON(t *testing.T) {
	f := newFixture(t)

	rr := f.do(http.MethodGet, "/roasts?sort=name&dir=asc", "", "", map[string]string{"Accept": "application/json"})
	require.Equal(t, http.StatusOK, rr.Code)

	var body pagination.Response[roast.DTO]
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Len(t, body.Data, 3)
	assert.Equal(t, "Onyx", body.Data[0].RoasterName)
	assert.Equal(t, uint64(3), body.Pagination.Total)
}

func TestList_BadRequests(t *testing.T) {
	f := newFixture(t)

	for _, target := range []string{"/roasts?page=-1", "/roasts?roaster_id=x", "/roasts?roaster_id=0"} {
		rr := f.do(http.MethodGet, target, "", "", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code, target)
	}
}

func TestList_RepositoryFailure(t *testing.T) {
	f := newFixture(t)
	f.roasts.listErr = errors.New("dial tcp 10.0.0.1:5432: connection refused")

	rr := f.do(http.MethodGet, "/roasts", "", "", nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "10.0.0.1")
}

/* ───────── 作成 ───────── */

func TestCreate(t *testing.T) {
	tests := []struct {
		name         string
		contentType  string
		body         string
		headers      map[string]string
		wantStatus   int
		wantLocation string
	}{
		{
			name:         "form",
			contentType:  "application/x-www-form-urlencoded",
			body:         "roaster_id=2&name=Ayla",
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/roasts/4",
		},
		{
			name:        "json",
			contentType: "application/json",
			body:        `{"roaster_id":2,"name":"Ayla"}`,
			wantStatus:  http.StatusCreated,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			rr := f.do(http.MethodPost, "/roasts", tt.contentType, tt.body, tt.headers)
			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantLocation, rr.Header().Get("Location"))
			assert.Len(t, f.roasts.rows, 4)
		})
	}
}

func TestCreate_JSONBody(t *testing.T) {
	f := newFixture(t)

	rr := f.do(http.MethodPost, "/roasts", "application/json", `{"roaster_id":1,"name":" Dharma ","process":"natural"}`, nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	var dto roast.DTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&dto))
	assert.Equal(t, int64(4), dto.ID)
	assert.Equal(t, "Dharma", dto.Name)
	assert.Equal(t, "natural", dto.Process)
}

func TestCreate_HypermediaScriptRedirect(t *testing.T) {
	f := newFixture(t)

	rr := f.do(http.MethodPost, "/roasts", "application/x-www-form-urlencoded", "roaster_id=1&name=Dharma", hypermedia)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "body", rr.Header().Get(respond.HeaderSelector))
	assert.Equal(t, "append", rr.Header().Get(respond.HeaderMode))
	assert.Equal(t, `<script>window.location.href = "/roasts/4";</script>`, rr.Body.String())
}

func TestCreate_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{"missing roaster", "name=Ayla", http.StatusBadRequest, "roaster_id is required"},
		{"unknown roaster", "roaster_id=9&name=Ayla", http.StatusBadRequest, "roaster_id"},
		{"missing name", "roaster_id=1", http.StatusBadRequest, "name is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			rr := f.do(http.MethodPost, "/roasts", "application/x-www-form-urlencoded", tt.body, nil)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantMsg)
			assert.Len(t, f.roasts.rows, 3)
		})
	}
}

/* ───────── 詳細・削除 ───────── */

func TestGet(t *testing.T) {
	f := newFixture(t)

	rr := f.do(http.MethodGet, "/roasts/3", "", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	doc := document(t, rr)
	assert.Equal(t, "Halo Beriti", doc.Find("article.roast-detail h1").Text())
	assert.Equal(t, "La Cabra", doc.Find("p.roaster a").Text())

	rr = f.do(http.MethodGet, "/roasts/30", "", "", map[string]string{"Accept": "application/json"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name         string
		headers      map[string]string
		wantStatus   int
		wantLocation string
		wantBody     string
	}{
		{"form", nil, http.StatusSeeOther, "/roasts", ""},
		{"json", map[string]string{"Accept": "application/json"}, http.StatusNoContent, "", ""},
		{"hypermedia", hypermedia, http.StatusOK, "", `<script>window.location.href = "/roasts";</script>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			rr := f.do(http.MethodDelete, "/roasts/1", "", "", tt.headers)
			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantLocation, rr.Header().Get("Location"))
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rr.Body.String())
			}
			assert.Len(t, f.roasts.rows, 2)
		})
	}
}

func TestDelete_NotFound(t *testing.T) {
	f := newFixture(t)

	rr := f.do(http.MethodDelete, "/roasts/99", "", "", map[string]string{"Accept": "application/json"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
