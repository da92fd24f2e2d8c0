// Package httpapi exposes the catalog service over REST: public browsing,
// signup/login, and token-gated catalog mutations.
package httpapi

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"

	"github.com/andrejsk/prodcatalog/internal/logging"
	"github.com/andrejsk/prodcatalog/internal/server/auth"
	"github.com/andrejsk/prodcatalog/internal/server/repositories/repomanager"
	"github.com/andrejsk/prodcatalog/internal/server/services"
)

type HTTPServer struct {
	address     string
	logger      logging.Logger
	users       *services.UserService
	products    *services.ProductService
	seed        *services.SeedService
	images      *services.ImageService
	codec       *auth.Codec
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewHTTPServer(address string, logger logging.Logger, us *services.UserService,
	ps *services.ProductService, ss *services.SeedService, is *services.ImageService,
	codec *auth.Codec, db *sql.DB, m repomanager.RepositoryManager) (*HTTPServer, error) {
	return &HTTPServer{
		address:     address,
		logger:      logger.With("module", "http_server"),
		users:       us,
		products:    ps,
		seed:        ss,
		images:      is,
		codec:       codec,
		db:          db,
		repomanager: m,
	}, nil
}

func (s *HTTPServer) router() chi.Router {
	r := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowOriginFunc:  func(r *http.Request, origin string) bool { return true },
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "Content-Length", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	})

	r.Use(corsHandler.Handler, s.requestLogger, render.SetContentType(render.ContentTypeJSON))

	r.Get("/", s.health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users/signup", s.signup)
		r.Post("/users/login", s.login)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", s.listProducts)
			r.Get("/{id}", s.getProduct)

			// privileged catalog mutations
			r.Group(func(r chi.Router) {
				r.Use(s.authentication)
				r.Post("/", s.createProduct)
				r.Patch("/{id}", s.updateProduct)
				r.Delete("/{id}", s.deleteProduct)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(s.authentication)
			r.Get("/seed/products", s.seedProducts)
			r.Post("/uploads", s.createUploadURL)
			r.Get("/uploads/*", s.getImageURL)
		})
	})

	return r
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
