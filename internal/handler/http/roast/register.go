package roast

import (
	"log/slog"
	"net/http"

	roastUC "brewlog/internal/usecase/roast"
	roasterUC "brewlog/internal/usecase/roaster"
	"brewlog/internal/web"
)

// Deps are shared by every roast handler. Roasters feeds the roaster
// choices of the new roast form.
type Deps struct {
	Svc      *roastUC.Service
	Roasters *roasterUC.Service
	Views    *web.Renderer
	Logger   *slog.Logger
}

func (d Deps) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.Default()
	}
	return d.Logger
}

// Register registers all roast HTTP handlers with the given mux.
func Register(mux *http.ServeMux, d Deps) {
	mux.Handle("GET    /roasts", ListHandler{d})
	mux.Handle("GET    /roasts/{id}", GetHandler{d})

	mux.Handle("POST   /roasts", CreateHandler{d})
	mux.Handle("DELETE /roasts/{id}", DeleteHandler{d})
}
