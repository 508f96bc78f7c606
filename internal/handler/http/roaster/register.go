package roaster

import (
	"log/slog"
	"net/http"

	extractUC "brewlog/internal/usecase/extract"
	roasterUC "brewlog/internal/usecase/roaster"
	"brewlog/internal/web"
)

// Deps are shared by every roaster handler. Extract may be nil when
// extraction is switched off. ExtractLimit, when set, wraps the extraction
// endpoint, typically with a per-client rate limiter.
type Deps struct {
	Svc          *roasterUC.Service
	Extract      *extractUC.Service
	Views        *web.Renderer
	Logger       *slog.Logger
	ExtractLimit func(http.Handler) http.Handler
}

func (d Deps) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.Default()
	}
	return d.Logger
}

func (d Deps) extractEnabled() bool {
	return d.Extract != nil && d.Extract.Enabled()
}

// Register registers all roaster HTTP handlers with the given mux.
// Updates are accepted as PUT, and as POST for plain HTML forms.
func Register(mux *http.ServeMux, d Deps) {
	mux.Handle("GET    /roasters", ListHandler{d})
	mux.Handle("GET    /roasters/{id}", GetHandler{d})

	mux.Handle("POST   /roasters", CreateHandler{d})
	var extract http.Handler = ExtractHandler{d}
	if d.ExtractLimit != nil {
		extract = d.ExtractLimit(extract)
	}
	mux.Handle("POST   /roasters/extract", extract)
	mux.Handle("PUT    /roasters/{id}", UpdateHandler{d})
	mux.Handle("POST   /roasters/{id}", UpdateHandler{d})
	mux.Handle("DELETE /roasters/{id}", DeleteHandler{d})
}
