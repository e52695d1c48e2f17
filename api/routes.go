package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	mc "github.com/saeidalz13/battleship-peer/models/connection"
)

func SetupRoutes(rp RequestProcessor) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", Healthz)
	r.Get("/state", rp.HandleGetState)
	r.Get("/battleship", rp.ServeClient)
	r.Get(mc.PeerPath, rp.ServePeer)
	return r
}
