package api

import (
	"net/http"
)

// @Summary      Health check
// @Description  Times a round trip through a scratch session cache and a database ping.
// @Tags         system
// @Produce      json
// @Success      200  {object}  health.Status
// @Router       /ping [get]
func (s *Server) PingHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.health.Check(r.Context()))
}

// @Summary      Dumps the session cache
// @Description  Returns every live session, soonest to expire first.
// @Tags         system
// @Produce      json
// @Success      200  {array}  cache.Entry[string,string]
// @Router       /cache [get]
func (s *Server) CacheHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.sessions.Items())
}
