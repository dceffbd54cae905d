package api

import (
	"net/http"

	"magazyn-plikow/internal/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logger.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.config.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	if s.metrics != nil {
		r.Use(s.metrics.Middleware)
		r.Handle("/metrics", s.metrics.Handler())
	}

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://"+s.config.AppHost+"/swagger/doc.json"),
	))

	// long-lived, so it stays outside the request timeout
	r.Get("/ws", s.ServeWsHandler)

	r.Group(func(r chi.Router) {
		if s.config.Server.RequestTimeout > 0 {
			r.Use(middleware.Timeout(s.config.Server.RequestTimeout))
		}

		r.Get("/ping", s.PingHandler)
		r.Get("/cache", s.CacheHandler)

		r.Post("/register", s.RegisterHandler)
		r.Post("/token", s.TokenHandler)

		r.Route("/files", func(r chi.Router) {
			r.Get("/", s.ListFilesHandler)
			r.Post("/upload", s.UploadFileHandler)
			r.Get("/download", s.DownloadFileHandler)
		})
	})

	return r
}
