package roaster

import (
	"net/http"

	"brewlog/internal/handler/http/respond"
)

type ExtractHandler struct{ Deps }

// ServeHTTP fills the new roaster form from free text. The answer only
// updates client signals; no markup is patched.
func (h ExtractHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !h.extractEnabled() {
		respond.Fail(w, respond.NewAppError(http.StatusServiceUnavailable, "extraction disabled", nil))
		return
	}

	var in extractPayload
	if _, err := respond.DecodePayload(r, &in); err != nil {
		respond.Fail(w, err)
		return
	}

	s, err := h.Extract.ExtractRoaster(r.Context(), in.Text)
	if err != nil {
		respond.Fail(w, err)
		return
	}
	respond.Write(w, r, respond.Signals{Values: map[string]any{
		"_roaster-name":     s.Name,
		"_roaster-country":  s.Country,
		"_roaster-city":     s.City,
		"_roaster-homepage": s.Homepage,
	}}, nil)
}
