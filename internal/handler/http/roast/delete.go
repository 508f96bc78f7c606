package roast

import (
	"net/http"

	"brewlog/internal/handler/http/pathutil"
	"brewlog/internal/handler/http/respond"
	"brewlog/internal/observability/logging"
)

type DeleteHandler struct{ Deps }

// ServeHTTP ロースト削除
//
// Deletes start from the detail page, so every client is sent back to the list.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Fail(w, respond.NewAppError(http.StatusBadRequest, err.Error(), nil))
		return
	}
	if err := h.Svc.Delete(ctx, id); err != nil {
		respond.Fail(w, err)
		return
	}
	logging.WithRequestID(ctx, h.logger()).Info("Roast deleted", "id", id)

	resp, err := respond.Negotiate(r, respond.SourceOf(r), respond.Mutation{
		RedirectTo: basePath,
		Status:     http.StatusNoContent,
	})
	respond.Write(w, r, resp, err)
}
