package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

type MessageResponse struct {
	Message string `json:"message" example:"The file has been uploaded successfully"`
}

type ErrorResponse struct {
	Detail string `json:"detail" example:"Unauthorized"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

func writeDetail(w http.ResponseWriter, r *http.Request, status int, detail string) {
	writeJSON(w, r, status, ErrorResponse{Detail: detail})
}
