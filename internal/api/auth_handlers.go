package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"magazyn-plikow/internal/auth"
	"magazyn-plikow/internal/database"

	"github.com/rs/zerolog"
)

type RegisterRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"password123"`
}

// @Summary      Registers a user
// @Description  Creates an account with a bcrypt-hashed password.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        registerRequest  body      RegisterRequest  true  "Credentials"
// @Success      200              {object}  MessageResponse
// @Failure      400              {object}  ErrorResponse
// @Failure      409              {object}  ErrorResponse
// @Failure      500              {object}  ErrorResponse
// @Router       /register [post]
func (s *Server) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, err := s.auth.Register(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, auth.ErrInvalidInput):
		writeDetail(w, r, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, database.ErrUserExists):
		writeDetail(w, r, http.StatusConflict, "Username already registered")
		return
	case err != nil:
		zerolog.Ctx(r.Context()).Error().Err(err).Str("username", req.Username).Msg("registration failed")
		writeDetail(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, MessageResponse{Message: "User registered successfully"})
}

// @Summary      Logs a user in
// @Description  Checks the credentials, issues an access token and opens a session for the user.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      200       {object}  auth.Token
// @Failure      401       {object}  ErrorResponse
// @Failure      500       {object}  ErrorResponse
// @Router       /token [post]
func (s *Server) TokenHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeDetail(w, r, http.StatusBadRequest, "Invalid form body")
		return
	}
	username := r.PostForm.Get("username")

	token, err := s.auth.Login(r.Context(), username, r.PostForm.Get("password"))
	if s.metrics != nil {
		s.metrics.ObserveLogin(err == nil)
	}
	if errors.Is(err, auth.ErrAuth) {
		writeDetail(w, r, http.StatusUnauthorized, "Incorrect username or password")
		return
	}
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("username", username).Msg("login failed")
		writeDetail(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, token)
}
