package roaster_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewlog/internal/common/pagination"
	"brewlog/internal/domain/entity"
	"brewlog/internal/repository"
	roasterUC "brewlog/internal/usecase/roaster"
)

/*────────────────────  インメモリスタブ  ────────────────────*/

type stubRoasters struct {
	data       map[int64]*entity.Roaster
	nextID     int64
	err        error // 強制エラー注入用
	lastSearch string
}

func newStubRoasters() *stubRoasters {
	return &stubRoasters{data: map[int64]*entity.Roaster{}, nextID: 1}
}

func (s *stubRoasters) Get(_ context.Context, id int64) (*entity.Roaster, error) {
	if s.err != nil {
		return nil, s.err
	}
	r, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (s *stubRoasters) List(_ context.Context, req pagination.ListRequest[entity.RoasterSortKey], search string) (pagination.Page[entity.Roaster], error) {
	s.lastSearch = search
	if s.err != nil {
		return pagination.Page[entity.Roaster]{}, s.err
	}
	var items []entity.Roaster
	for id := int64(1); id < s.nextID; id++ {
		if r, ok := s.data[id]; ok {
			items = append(items, *r)
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

func (s *stubRoasters) Create(_ context.Context, r *entity.Roaster) error {
	if s.err != nil {
		return s.err
	}
	r.ID = s.nextID
	s.nextID++
	cp := *r
	s.data[r.ID] = &cp
	return nil
}

func (s *stubRoasters) Update(_ context.Context, r *entity.Roaster) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.data[r.ID]; !ok {
		return entity.ErrNotFound
	}
	cp := *r
	s.data[r.ID] = &cp
	return nil
}

func (s *stubRoasters) Delete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.data[id]; !ok {
		return entity.ErrNotFound
	}
	delete(s.data, id)
	return nil
}

// stubRoasts only answers CountByRoaster; the roaster use case needs nothing else.
type stubRoasts struct {
	repository.RoastRepository
	counts map[int64]int64
	err    error
}

func (s *stubRoasts) CountByRoaster(_ context.Context, roasterID int64) (int64, error) {
	return s.counts[roasterID], s.err
}

func newService() (*roasterUC.Service, *stubRoasters, *stubRoasts) {
	roasters := newStubRoasters()
	roasts := &stubRoasts{counts: map[int64]int64{}}
	return &roasterUC.Service{Roasters: roasters, Roasts: roasts}, roasters, roasts
}

func ptr(s string) *string { return &s }

/*────────────────────  テストケース  ────────────────────*/

func TestService_Create(t *testing.T) {
	svc, roasters, _ := newService()

	got, err := svc.Create(context.Background(), roasterUC.CreateInput{
		Name:     "  Onyx Coffee Lab ",
		Country:  "USA",
		Homepage: "https://onyxcoffeelab.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Onyx Coffee Lab", got.Name)
	assert.Equal(t, "Onyx Coffee Lab", roasters.data[1].Name)
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		in    roasterUC.CreateInput
		field string
	}{
		{name: "missing name", in: roasterUC.CreateInput{Name: "   "}, field: "name"},
		{name: "name too long", in: roasterUC.CreateInput{Name: strings.Repeat("a", entity.MaxNameLength+1)}, field: "name"},
		{name: "bad homepage", in: roasterUC.CreateInput{Name: "Onyx", Homepage: "ftp://onyx"}, field: "homepage"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, roasters, _ := newService()
			_, err := svc.Create(context.Background(), tt.in)

			var verr *entity.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.Empty(t, roasters.data)
		})
	}
}

func TestService_Create_RepoError(t *testing.T) {
	svc, roasters, _ := newService()
	roasters.err = errors.New("disk full")

	_, err := svc.Create(context.Background(), roasterUC.CreateInput{Name: "Onyx"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create roaster")
}

func TestService_Get(t *testing.T) {
	svc, roasters, _ := newService()
	roasters.data[1] = &entity.Roaster{ID: 1, Name: "Onyx"}
	roasters.nextID = 2

	got, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Onyx", got.Name)

	_, err = svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, roasterUC.ErrRoasterNotFound)
	assert.ErrorIs(t, err, entity.ErrNotFound)

	_, err = svc.Get(context.Background(), 0)
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestService_Update(t *testing.T) {
	svc, roasters, _ := newService()
	roasters.data[1] = &entity.Roaster{ID: 1, Name: "Onyx", Country: "USA"}
	roasters.nextID = 2

	got, err := svc.Update(context.Background(), roasterUC.UpdateInput{ID: 1, City: ptr("Rogers")})
	require.NoError(t, err)
	assert.Equal(t, "Onyx", got.Name)
	assert.Equal(t, "USA", got.Country)
	assert.Equal(t, "Rogers", roasters.data[1].City)
}

func TestService_Update_ClearsOptionalField(t *testing.T) {
	svc, roasters, _ := newService()
	roasters.data[1] = &entity.Roaster{ID: 1, Name: "Onyx", Country: "USA"}
	roasters.nextID = 2

	_, err := svc.Update(context.Background(), roasterUC.UpdateInput{ID: 1, Country: ptr("")})
	require.NoError(t, err)
	assert.Empty(t, roasters.data[1].Country)
}

func TestService_Update_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   roasterUC.UpdateInput
		want error
	}{
		{name: "no fields", in: roasterUC.UpdateInput{ID: 1}, want: roasterUC.ErrNoChanges},
		{name: "missing roaster", in: roasterUC.UpdateInput{ID: 42, Name: ptr("x")}, want: roasterUC.ErrRoasterNotFound},
		{name: "blank name", in: roasterUC.UpdateInput{ID: 1, Name: ptr(" ")}, want: entity.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, roasters, _ := newService()
			roasters.data[1] = &entity.Roaster{ID: 1, Name: "Onyx"}
			roasters.nextID = 2

			_, err := svc.Update(context.Background(), tt.in)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, "Onyx", roasters.data[1].Name)
		})
	}
}

func TestService_NoChangesMessage(t *testing.T) {
	assert.Contains(t, roasterUC.ErrNoChanges.Error(), "no changes provided")
}

func TestService_Delete(t *testing.T) {
	svc, roasters, _ := newService()
	roasters.data[1] = &entity.Roaster{ID: 1, Name: "Onyx"}
	roasters.nextID = 2

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Empty(t, roasters.data)

	assert.ErrorIs(t, svc.Delete(context.Background(), 1), roasterUC.ErrRoasterNotFound)
}

func TestService_Delete_InUse(t *testing.T) {
	svc, roasters, roasts := newService()
	roasters.data[1] = &entity.Roaster{ID: 1, Name: "Onyx"}
	roasters.nextID = 2
	roasts.counts[1] = 3

	err := svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, roasterUC.ErrRoasterInUse)
	assert.ErrorIs(t, err, entity.ErrConflict)
	assert.Contains(t, err.Error(), "still has roasts")
	assert.Len(t, roasters.data, 1)
}

func TestService_Delete_CountError(t *testing.T) {
	svc, _, roasts := newService()
	roasts.err = errors.New("connection reset")

	err := svc.Delete(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count roasts")
}

func TestService_List(t *testing.T) {
	svc, roasters, _ := newService()
	for _, name := range []string{"Onyx", "Tim Wendelboe", "La Cabra"} {
		_, err := svc.Create(context.Background(), roasterUC.CreateInput{Name: name})
		require.NoError(t, err)
	}

	req := pagination.NewListRequest(5, pagination.Limited(2), entity.RoasterSortName, pagination.SortAsc)
	page, err := svc.List(context.Background(), req, "  cabra ")
	require.NoError(t, err)
	assert.Equal(t, "cabra", roasters.lastSearch)
	assert.Equal(t, uint32(2), page.Page)
	assert.Equal(t, uint64(3), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "La Cabra", page.Items[0].Name)
}

func TestService_All(t *testing.T) {
	svc, _, _ := newService()
	for _, name := range []string{"Onyx", "Tim Wendelboe"} {
		_, err := svc.Create(context.Background(), roasterUC.CreateInput{Name: name})
		require.NoError(t, err)
	}

	all, err := svc.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestService_RoastCount(t *testing.T) {
	svc, _, roasts := newService()
	roasts.counts[4] = 2

	n, err := svc.RoastCount(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	roasts.err = errors.New("connection reset")
	_, err = svc.RoastCount(context.Background(), 4)
	assert.ErrorContains(t, err, "count roasts")
}
