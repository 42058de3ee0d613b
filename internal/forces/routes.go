package forces

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts all vector endpoints onto the given router under the
// /forces prefix.
func RegisterRoutes(r chi.Router, api *API) {
	r.Route("/forces", func(r chi.Router) {
		r.Post("/decompose", api.Decompose)
		r.Post("/sum", api.Sum)
		r.Post("/layout", api.Layout)
		r.Post("/solve", api.Solve)
		r.Get("/history", api.History)
		r.Delete("/history", api.ClearHistory)
	})
}
