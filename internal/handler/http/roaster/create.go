package roaster

import (
	"net/http"

	"brewlog/internal/handler/http/respond"
	"brewlog/internal/observability/logging"
	roasterUC "brewlog/internal/usecase/roaster"
)

type CreateHandler struct{ Deps }

// ServeHTTP ロースター作成
//
// Accepts JSON or form bodies. The list state in the query string decides
// which list a hypermedia or form client returns to.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.logger())

	req, search, err := listRequest(r)
	if err != nil {
		respond.Fail(w, err)
		return
	}

	var in createPayload
	source, err := respond.DecodePayload(r, &in)
	if err != nil {
		logger.Warn("Invalid roaster payload", "source", source.String(), "error", err.Error())
		respond.Fail(w, err)
		return
	}

	created, err := h.Svc.Create(ctx, roasterUC.CreateInput{
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
	logger.Info("Roaster created", "id", created.ID, "source", source.String())

	resp, err := respond.Negotiate(r, source,
		h.listMutation(ctx, req.WithPage(1), search, http.StatusCreated, toDTO(*created)))
	respond.Write(w, r, resp, err)
}
