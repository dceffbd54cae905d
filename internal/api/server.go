package api

import (
	"magazyn-plikow/internal/auth"
	"magazyn-plikow/internal/cache"
	"magazyn-plikow/internal/config"
	"magazyn-plikow/internal/files"
	"magazyn-plikow/internal/health"
	"magazyn-plikow/internal/metrics"
	"magazyn-plikow/internal/websocket"

	gorillaws "github.com/gorilla/websocket"
)

// Sessions is the login cache shared by the authenticator, the file service
// and the /cache endpoint.
type Sessions = cache.TTL[string, string]

type Server struct {
	config   *config.Config
	auth     *auth.Authenticator
	issuer   *auth.Issuer
	files    *files.Service
	sessions *Sessions
	health   *health.Checker
	metrics  *metrics.Metrics
	wsHub    *websocket.Hub
	upgrader *gorillaws.Upgrader
}

type Deps struct {
	Auth     *auth.Authenticator
	Issuer   *auth.Issuer
	Files    *files.Service
	Sessions *Sessions
	Health   *health.Checker
	Metrics  *metrics.Metrics
	Hub      *websocket.Hub
}

func NewServer(cfg *config.Config, deps Deps) *Server {
	return &Server{
		config:   cfg,
		auth:     deps.Auth,
		issuer:   deps.Issuer,
		files:    deps.Files,
		sessions: deps.Sessions,
		health:   deps.Health,
		metrics:  deps.Metrics,
		wsHub:    deps.Hub,
		upgrader: websocket.NewUpgrader(cfg.Server.AllowedOrigins),
	}
}
