package cache

import (
  "context"
  "encoding/json"
  "errors"
  "time"

  "github.com/myartworld/ai-service/internal/logger"
)

// ErrNotFound is returned by a Store when no entry exists for a key.
var ErrNotFound = errors.New("cache: entry not found")

// Entry is a stored payload plus its write timestamp (unix seconds).
type Entry struct {
  Payload json.RawMessage `json:"payload"`
  SavedAt int64           `json:"saved_at"`
}

// Store is the keyed storage surface behind the TTL cache. Implementations
// must be durable across process restarts (file, redis) except test fakes.
type Store interface {
  Get(ctx context.Context, key string) (*Entry, error)
  Set(ctx context.Context, key string, entry Entry) error
  Delete(ctx context.Context, key string) error
}

// Cache wraps a Store with TTL expiry and the miss-on-corruption contract:
// a malformed or unreadable entry is a miss, never a user-visible failure.
type Cache struct {
  log   *logger.Logger
  store Store
  now   func() time.Time
}

func New(log *logger.Logger, store Store) *Cache {
  return &Cache{
    log:   log.With("component", "Cache"),
    store: store,
    now:   time.Now,
  }
}

// Get returns the payload for key, or ok=false on miss. A ttl of zero means
// no expiry. Expired entries are deleted and reported as a miss.
func (c *Cache) Get(ctx context.Context, key string, ttl time.Duration) (json.RawMessage, bool) {
  entry, err := c.store.Get(ctx, key)
  if err != nil {
    if !errors.Is(err, ErrNotFound) {
      c.log.Warn("Cache read failed, treating as miss", "key", key, "error", err)
    }
    return nil, false
  }
  if entry == nil || len(entry.Payload) == 0 {
    return nil, false
  }
  if ttl > 0 {
    age := c.now().Unix() - entry.SavedAt
    if entry.SavedAt <= 0 || age > int64(ttl.Seconds()) {
      if err := c.store.Delete(ctx, key); err != nil {
        c.log.Warn("Failed to delete expired entry", "key", key, "error", err)
      }
      return nil, false
    }
  }
  return entry.Payload, true
}

// Set stores value under key with the current write timestamp, fully
// overwriting any prior entry.
func (c *Cache) Set(ctx context.Context, key string, value any) error {
  payload, err := json.Marshal(value)
  if err != nil {
    return err
  }
  return c.store.Set(ctx, key, Entry{
    Payload: payload,
    SavedAt: c.now().Unix(),
  })
}
