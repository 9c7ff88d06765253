package cache

import (
  "context"
  "encoding/json"
  "fmt"
  "os"
  "path/filepath"

  "github.com/myartworld/ai-service/internal/logger"
)

// fileStore keeps one JSON file per key under dir. Keys are content hashes so
// they are filesystem-safe as-is. Overwrites are idempotent; no locking.
type fileStore struct {
  log *logger.Logger
  dir string
}

func NewFileStore(log *logger.Logger, dir string) (Store, error) {
  if dir == "" {
    return nil, fmt.Errorf("cache dir required")
  }
  if err := os.MkdirAll(dir, 0o755); err != nil {
    return nil, fmt.Errorf("create cache dir: %w", err)
  }
  return &fileStore{
    log: log.With("store", "FileStore", "dir", dir),
    dir: dir,
  }, nil
}

func (s *fileStore) path(key string) string {
  return filepath.Join(s.dir, key+".json")
}

func (s *fileStore) Get(ctx context.Context, key string) (*Entry, error) {
  raw, err := os.ReadFile(s.path(key))
  if err != nil {
    if os.IsNotExist(err) {
      return nil, ErrNotFound
    }
    return nil, err
  }
  var entry Entry
  if err := json.Unmarshal(raw, &entry); err != nil {
    return nil, fmt.Errorf("decode entry: %w", err)
  }
  return &entry, nil
}

func (s *fileStore) Set(ctx context.Context, key string, entry Entry) error {
  raw, err := json.Marshal(entry)
  if err != nil {
    return err
  }
  // Write through a temp file so a crash mid-write never leaves a truncated
  // entry behind (a corrupt entry would read as a miss anyway).
  tmp := s.path(key) + ".tmp"
  if err := os.WriteFile(tmp, raw, 0o644); err != nil {
    return err
  }
  return os.Rename(tmp, s.path(key))
}

func (s *fileStore) Delete(ctx context.Context, key string) error {
  err := os.Remove(s.path(key))
  if err != nil && !os.IsNotExist(err) {
    return err
  }
  return nil
}
