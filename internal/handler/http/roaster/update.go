package roaster

import (
	"net/http"

	"brewlog/internal/handler/http/pathutil"
	"brewlog/internal/handler/http/respond"
	"brewlog/internal/observability/logging"
	roasterUC "brewlog/internal/usecase/roaster"
)

type UpdateHandler struct{ Deps }

// ServeHTTP ロースター更新
//
// Only fields present in the body change.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.logger())

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

	var in updatePayload
	source, err := respond.DecodePayload(r, &in)
	if err != nil {
		respond.Fail(w, err)
		return
	}

	updated, err := h.Svc.Update(ctx, roasterUC.UpdateInput{
		ID:       id,
		Name:     in.Name,
		Country:  in.Country,
		City:     in.City,
		Homepage: in.Homepage,
		Notes:    in.Notes,
	})
	if err != nil {
		respond.Fail(w, err)
		return
	}
	logger.Info("Roaster updated", "id", id, "source", source.String())

	resp, err := respond.Negotiate(r, source,
		h.listMutation(ctx, req, search, http.StatusOK, toDTO(*updated)))
	respond.Write(w, r, resp, err)
}
