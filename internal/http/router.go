package http

import (
	"net/http"

	"resties/internal/auth"
	"resties/internal/config"
	"resties/internal/geo"
	"resties/internal/gmaps"
	"resties/internal/http/handler"
	mw "resties/internal/http/middleware"
	"resties/internal/place"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func NewRouter(cfg config.Config, db *gorm.DB, jwtSvc *auth.JWT, maps *gmaps.Client, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(mw.RequestLogger(logger))

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	geoCache := &geo.Cache{DB: db, Geocoder: maps}
	list := &place.List{DB: db}
	svc := &place.Service{
		Catalog:  &place.Catalog{DB: db},
		List:     list,
		Visits:   &place.Visits{DB: db, List: list},
		Search:   &place.Search{DB: db, Geo: geoCache, Provider: maps, List: list},
		Provider: maps,
	}

	ah := &handler.AuthHandler{DB: db, JWT: jwtSvc, Geo: geoCache}
	r.Post("/auth/register", ah.Register)
	r.Post("/auth/login", ah.Login)

	me := &handler.MeHandler{DB: db}
	r.With(auth.RequireAuth(jwtSvc)).Get("/me", me.Me)

	placesH := &handler.PlacesHandler{Svc: svc}
	visitsH := &handler.VisitsHandler{Svc: svc}
	searchH := &handler.SearchHandler{Svc: svc}

	r.Route("/places", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))

		r.Get("/", placesH.List)
		r.Post("/{placeID}", placesH.Add)
		r.Delete("/{placeID}", placesH.Remove)
		r.Put("/{placeID}/notes", placesH.UpdateNotes)
		r.Get("/{placeID}/details", placesH.Details)

		r.Get("/{placeID}/visits", visitsH.List)
		r.Post("/{placeID}/visits", visitsH.Record)
	})

	r.With(auth.RequireAuth(jwtSvc)).Put("/visits/{visitID}", visitsH.Edit)
	r.With(auth.RequireAuth(jwtSvc)).Get("/search", searchH.Search)

	return r
}
