package roaster

import (
	"net/http"

	"brewlog/internal/handler/http/pathutil"
	"brewlog/internal/handler/http/respond"
	"brewlog/internal/observability/logging"
)

type DeleteHandler struct{ Deps }

// ServeHTTP ロースター削除
//
// A roaster that still has roasts is answered with 409.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Fail(w, respond.NewAppError(http.StatusBadRequest, err.Error(), nil))
		return
	}
	req, search, err := listRequest(r)
	if err != nil {
		respond.Fail(w, err)
		return
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		respond.Fail(w, err)
		return
	}
	logging.WithRequestID(ctx, h.logger()).Info("Roaster deleted", "id", id)

	resp, err := respond.Negotiate(r, respond.SourceOf(r),
		h.listMutation(ctx, req, search, http.StatusNoContent, nil))
	respond.Write(w, r, resp, err)
}
