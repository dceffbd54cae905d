package api

import (
	"net/http"

	"magazyn-plikow/internal/websocket"

	"github.com/rs/zerolog"
)

// @Summary      Upload notifications
// @Description  Upgrades to a websocket that receives file_uploaded events for the user. Requires a live session; a token, when given, must belong to the same user.
// @Tags         files
// @Param        username  query  string  true   "Session owner"
// @Param        token     query  string  false  "Access token"
// @Success      101
// @Failure      401  {object}  ErrorResponse
// @Router       /ws [get]
func (s *Server) ServeWsHandler(w http.ResponseWriter, r *http.Request) {
	log := zerolog.Ctx(r.Context())
	q := r.URL.Query()
	username := q.Get("username")

	if _, ok := s.sessions.Get(username); !ok {
		log.Info().Str("username", username).Msg("ws connection attempt without a session")
		writeDetail(w, r, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	if tokenString := q.Get("token"); tokenString != "" {
		claims, err := s.issuer.Verify(tokenString)
		if err != nil || claims.Subject != username {
			log.Info().Err(err).Str("username", username).Msg("ws connection attempt with invalid token")
			writeDetail(w, r, http.StatusUnauthorized, msgUnauthorized)
			return
		}
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := websocket.NewClient(s.wsHub, conn, username)
	if !s.wsHub.Attach(client) {
		log.Warn().Str("username", username).Msg("websocket hub stopped, closing connection")
		conn.Close()
		return
	}

	go client.ReadPump()
	go client.WritePump()
}
