package roast

import (
	"net/http"
	"strconv"

	"brewlog/internal/handler/http/respond"
	"brewlog/internal/observability/logging"
	roastUC "brewlog/internal/usecase/roast"
)

type CreateHandler struct{ Deps }

// ServeHTTP ロースト作成
//
// A new roast is shown on its own page, so hypermedia clients are sent
// there with a script redirect instead of a list fragment.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.logger())

	var in createPayload
	source, err := respond.DecodePayload(r, &in)
	if err != nil {
		logger.Warn("Invalid roast payload", "source", source.String(), "error", err.Error())
		respond.Fail(w, err)
		return
	}

	created, err := h.Svc.Create(ctx, roastUC.CreateInput{
		RoasterID:    in.RoasterID,
		Name:         in.Name,
		Origin:       in.Origin,
		Process:      in.Process,
		TastingNotes: in.TastingNotes,
	})
	if err != nil {
		respond.Fail(w, err)
		return
	}
	logger.Info("Roast created", "id", created.ID, "roaster_id", created.RoasterID, "source", source.String())

	resp, err := respond.Negotiate(r, source, respond.Mutation{
		RedirectTo: basePath + "/" + strconv.FormatInt(created.ID, 10),
		Status:     http.StatusCreated,
		Body:       toDTO(*created, ""),
	})
	respond.Write(w, r, resp, err)
}
