package files

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"magazyn-plikow/internal/cache"
	"magazyn-plikow/internal/database"
	"magazyn-plikow/internal/models"
	"magazyn-plikow/internal/storage"

	"github.com/stretchr/testify/require"
)

type memoryMetadata struct {
	mu     sync.Mutex
	files  []models.File
	err    error
	nextID int64
}

func (m *memoryMetadata) InsertFile(_ context.Context, arg database.InsertFileParams) (*models.File, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.nextID++
	f := models.File{
		ID:             m.nextID,
		Username:       arg.Username,
		Name:           arg.Name,
		CreatedAt:      arg.CreatedAt,
		Path:           arg.Path,
		Size:           arg.Size,
		IsDownloadable: true,
	}
	m.files = append(m.files, f)
	return &f, nil
}

func (m *memoryMetadata) ListFilesForUser(_ context.Context, username string) ([]models.File, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.File{}
	for _, f := range m.files {
		if f.Username == username {
			out = append(out, f)
		}
	}
	return out, nil
}

type recordingNotifier struct {
	mu     sync.Mutex
	events map[string][][]byte
}

func (r *recordingNotifier) PublishEvent(username string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.events == nil {
		r.events = make(map[string][][]byte)
	}
	r.events[username] = append(r.events[username], data)
}

type fixture struct {
	svc      *Service
	sessions *cache.TTL[string, string]
	meta     *memoryMetadata
	blobs    *storage.LocalStorage
	notifier *recordingNotifier
	srcDir   string
}

func newFixture(t *testing.T) *fixture {
	blobs, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	f := &fixture{
		sessions: cache.New[string, string](10, time.Minute),
		meta:     &memoryMetadata{},
		blobs:    blobs,
		notifier: &recordingNotifier{},
		srcDir:   t.TempDir(),
	}
	f.svc = NewService(f.sessions, f.meta, f.blobs, f.notifier)
	return f
}

func (f *fixture) writeSource(t *testing.T, name, content string) string {
	path := filepath.Join(f.srcDir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestUpload_Success(t *testing.T) {
	f := newFixture(t)
	f.sessions.Put("alice", "token")
	path := f.writeSource(t, "report.txt", "hello world")

	file, err := f.svc.Upload(context.Background(), path, "alice")
	require.NoError(t, err)
	require.Equal(t, "report.txt", file.Name)
	require.Equal(t, int64(len("hello world")), file.Size)
	require.Equal(t, path, file.Path)
	require.Equal(t, "alice", file.Username)

	rc, err := f.blobs.Get(context.Background(), "report.txt")
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, "hello world", string(data))

	require.Len(t, f.notifier.events["alice"], 1)
	var event struct {
		EventType string      `json:"event_type"`
		Payload   models.File `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(f.notifier.events["alice"][0], &event))
	require.Equal(t, EventFileUploaded, event.EventType)
	require.Equal(t, file.ID, event.Payload.ID)
}

func TestUpload_MissingSourceCheckedFirst(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Upload(context.Background(), filepath.Join(f.srcDir, "nope.txt"), "nobody")
	require.ErrorIs(t, err, ErrSourceNotFound)

	_, err = f.svc.Upload(context.Background(), f.srcDir, "nobody")
	require.ErrorIs(t, err, ErrSourceNotFound, "directories are not uploadable")
}

func TestUpload_Unauthorized(t *testing.T) {
	f := newFixture(t)
	path := f.writeSource(t, "report.txt", "data")

	_, err := f.svc.Upload(context.Background(), path, "alice")
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Empty(t, f.meta.files)

	_, err = f.blobs.Get(context.Background(), "report.txt")
	require.ErrorIs(t, err, storage.ErrBlobNotFound)
}

func TestUpload_MetadataFailureLeavesBlob(t *testing.T) {
	f := newFixture(t)
	f.sessions.Put("alice", "token")
	f.meta.err = errors.New("db down")
	path := f.writeSource(t, "orphan.txt", "data")

	_, err := f.svc.Upload(context.Background(), path, "alice")
	require.Error(t, err)
	require.Contains(t, err.Error(), "db down")

	rc, err := f.blobs.Get(context.Background(), "orphan.txt")
	require.NoError(t, err)
	rc.Close()
	require.Empty(t, f.notifier.events)
}

func TestDownload(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.blobs.Put(context.Background(), "report.txt", strings.NewReader("content"), 7))

	_, _, err := f.svc.Download(context.Background(), "report.txt", "alice")
	require.ErrorIs(t, err, ErrUnauthorized)

	f.sessions.Put("alice", "token")
	rc, name, err := f.svc.Download(context.Background(), "/some/dir/report.txt", "alice")
	require.NoError(t, err)
	defer rc.Close()
	require.Equal(t, "report.txt", name)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, "content", string(data))

	_, _, err = f.svc.Download(context.Background(), "missing.txt", "alice")
	require.ErrorIs(t, err, storage.ErrBlobNotFound)
}

func TestList(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.List(context.Background(), "alice")
	require.ErrorIs(t, err, ErrUnauthorized)

	f.sessions.Put("alice", "token")
	files, err := f.svc.List(context.Background(), "alice")
	require.NoError(t, err)
	require.Empty(t, files)

	path := f.writeSource(t, "a.txt", "abc")
	_, err = f.svc.Upload(context.Background(), path, "alice")
	require.NoError(t, err)

	files, err = f.svc.List(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, int64(3), files[0].Size)
}

func TestExpiredSessionIsUnauthorized(t *testing.T) {
	f := newFixture(t)
	now := time.Now()
	f.sessions = cache.New[string, string](10, time.Minute, cache.WithClock(func() time.Time { return now }))
	f.svc = NewService(f.sessions, f.meta, f.blobs, nil)

	f.sessions.Put("alice", "token")
	_, err := f.svc.List(context.Background(), "alice")
	require.NoError(t, err)

	now = now.Add(time.Minute)
	_, err = f.svc.List(context.Background(), "alice")
	require.ErrorIs(t, err, ErrUnauthorized)
}
