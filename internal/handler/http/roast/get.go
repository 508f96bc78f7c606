package roast

import (
	"net/http"

	"brewlog/internal/handler/http/pathutil"
	"brewlog/internal/handler/http/respond"
	"brewlog/internal/web"
)

type GetHandler struct{ Deps }

// ServeHTTP ロースト詳細取得
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Fail(w, respond.NewAppError(http.StatusBadRequest, err.Error(), nil))
		return
	}

	roast, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.Fail(w, err)
		return
	}

	if respond.AcceptsJSON(r) {
		respond.JSON(w, http.StatusOK, listDTO(*roast))
		return
	}
	html, err := h.Views.Render("roasts/detail", web.RoastDetail{Roast: toRow(*roast)})
	respond.Write(w, r, respond.Document{Status: http.StatusOK, HTML: html}, err)
}
