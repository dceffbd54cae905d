// Package files moves uploaded files between the local filesystem, the blob
// store and the metadata database on behalf of logged-in users.
package files

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"magazyn-plikow/internal/database"
	"magazyn-plikow/internal/models"
	"magazyn-plikow/internal/storage"

	"github.com/rs/zerolog"
)

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrSourceNotFound = errors.New("the file was not found")
)

const EventFileUploaded = "file_uploaded"

type SessionChecker interface {
	Get(username string) (string, bool)
}

type MetadataStore interface {
	InsertFile(ctx context.Context, arg database.InsertFileParams) (*models.File, error)
	ListFilesForUser(ctx context.Context, username string) ([]models.File, error)
}

type Notifier interface {
	PublishEvent(username string, eventData []byte)
}

type Event struct {
	EventType string      `json:"event_type"`
	Payload   interface{} `json:"payload"`
}

type Service struct {
	sessions SessionChecker
	store    MetadataStore
	blobs    storage.BlobStore
	notifier Notifier
	now      func() time.Time
}

func NewService(sessions SessionChecker, store MetadataStore, blobs storage.BlobStore, notifier Notifier) *Service {
	return &Service{
		sessions: sessions,
		store:    store,
		blobs:    blobs,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *Service) authorized(username string) bool {
	_, ok := s.sessions.Get(username)
	return ok
}

// Upload copies the file at path into the blob store under its base name and
// records its metadata. A blob whose metadata insert fails is left in place.
func (s *Service) Upload(ctx context.Context, path, username string) (*models.File, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, ErrSourceNotFound
	}

	if !s.authorized(username) {
		return nil, ErrUnauthorized
	}

	src, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source file: %w", err)
	}
	defer src.Close()

	name := filepath.Base(path)
	if err := s.blobs.Put(ctx, name, src, info.Size()); err != nil {
		return nil, fmt.Errorf("store blob %s: %w", name, err)
	}

	file, err := s.store.InsertFile(ctx, database.InsertFileParams{
		Name:      name,
		CreatedAt: s.now().UTC(),
		Path:      path,
		Size:      info.Size(),
		Username:  username,
	})
	if err != nil {
		return nil, fmt.Errorf("record file metadata: %w", err)
	}

	s.publish(ctx, username, Event{EventType: EventFileUploaded, Payload: file})

	return file, nil
}

// Download opens the blob named by the base of path. The caller closes the reader.
func (s *Service) Download(ctx context.Context, path, username string) (io.ReadCloser, string, error) {
	if !s.authorized(username) {
		return nil, "", ErrUnauthorized
	}

	name := filepath.Base(path)
	rc, err := s.blobs.Get(ctx, name)
	if err != nil {
		return nil, "", err
	}
	return rc, name, nil
}

func (s *Service) List(ctx context.Context, username string) ([]models.File, error) {
	if !s.authorized(username) {
		return nil, ErrUnauthorized
	}
	return s.store.ListFilesForUser(ctx, username)
}

func (s *Service) publish(ctx context.Context, username string, event Event) {
	if s.notifier == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("event_type", event.EventType).Msg("failed to marshal event")
		return
	}
	s.notifier.PublishEvent(username, data)
}
