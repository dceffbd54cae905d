package api

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"magazyn-plikow/internal/files"
	"magazyn-plikow/internal/models"

	"github.com/rs/zerolog"
)

const (
	msgUploaded     = "The file has been uploaded successfully"
	msgFileNotFound = "The file was not found"
	msgUnauthorized = "Unauthorized"
)

type FileListResponse struct {
	AccountID string        `json:"account_id" example:"alice"`
	Files     []models.File `json:"files"`
}

// @Summary      Uploads a server-side file
// @Description  Copies the file at file_path into the blob store and records it for the user. A missing file or session is reported in the message with status 200.
// @Tags         files
// @Produce      json
// @Param        file_path  query     string  true  "Path of the file on the server"
// @Param        username   query     string  true  "Owner"
// @Success      200        {object}  MessageResponse
// @Failure      500        {object}  ErrorResponse
// @Router       /files/upload [post]
func (s *Server) UploadFileHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	file, err := s.files.Upload(r.Context(), q.Get("file_path"), q.Get("username"))
	switch {
	case errors.Is(err, files.ErrSourceNotFound):
		writeJSON(w, r, http.StatusOK, MessageResponse{Message: msgFileNotFound})
		return
	case errors.Is(err, files.ErrUnauthorized):
		writeJSON(w, r, http.StatusOK, MessageResponse{Message: msgUnauthorized})
		return
	case err != nil:
		zerolog.Ctx(r.Context()).Error().Err(err).Str("file_path", q.Get("file_path")).Msg("upload failed")
		writeDetail(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	if s.metrics != nil {
		s.metrics.AddUploadedBytes(file.Size)
	}
	writeJSON(w, r, http.StatusOK, MessageResponse{Message: msgUploaded})
}

// @Summary      Downloads a stored file
// @Tags         files
// @Produce      octet-stream
// @Param        file_path  query     string  true  "Path the file was uploaded from"
// @Param        username   query     string  true  "Owner"
// @Success      200        {file}    binary
// @Failure      401        {object}  ErrorResponse
// @Failure      500        {object}  ErrorResponse
// @Router       /files/download [get]
func (s *Server) DownloadFileHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	rc, name, err := s.files.Download(r.Context(), q.Get("file_path"), q.Get("username"))
	if errors.Is(err, files.ErrUnauthorized) {
		writeDetail(w, r, http.StatusUnauthorized, msgUnauthorized)
		return
	}
	if err != nil {
		writeDetail(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))

	if _, err := io.Copy(w, rc); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Str("name", name).Msg("download interrupted")
	}
}

// @Summary      Lists a user's files
// @Tags         files
// @Produce      json
// @Param        username  query     string  true  "Owner"
// @Success      200       {object}  FileListResponse
// @Failure      401       {object}  ErrorResponse
// @Failure      500       {object}  ErrorResponse
// @Router       /files/ [get]
func (s *Server) ListFilesHandler(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")

	list, err := s.files.List(r.Context(), username)
	if errors.Is(err, files.ErrUnauthorized) {
		writeDetail(w, r, http.StatusUnauthorized, msgUnauthorized)
		return
	}
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("username", username).Msg("listing files failed")
		writeDetail(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, FileListResponse{AccountID: username, Files: list})
}
