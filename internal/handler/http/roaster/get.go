package roaster

import (
	"net/http"

	"brewlog/internal/handler/http/pathutil"
	"brewlog/internal/handler/http/respond"
	"brewlog/internal/web"
)

type GetHandler struct{ Deps }

// ServeHTTP ロースター詳細取得
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Fail(w, respond.NewAppError(http.StatusBadRequest, err.Error(), nil))
		return
	}

	roaster, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.Fail(w, err)
		return
	}

	if respond.AcceptsJSON(r) {
		respond.JSON(w, http.StatusOK, toDTO(*roaster))
		return
	}

	count, err := h.Svc.RoastCount(r.Context(), id)
	if err != nil {
		respond.Fail(w, err)
		return
	}
	html, err := h.Views.Render("roasters/detail", web.RoasterDetail{Roaster: toRow(*roaster), RoastCount: count})
	respond.Write(w, r, respond.Document{Status: http.StatusOK, HTML: html}, err)
}
