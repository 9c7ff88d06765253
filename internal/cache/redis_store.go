package cache

import (
  "context"
  "encoding/json"
  "errors"
  "fmt"
  "os"
  "strings"
  "time"

  goredis "github.com/redis/go-redis/v9"

  "github.com/myartworld/ai-service/internal/logger"
)

// redisStore keeps entries as JSON strings in redis. TTL handling stays in the
// Cache wrapper so both backends behave identically; redis is used as a plain
// keyed surface.
type redisStore struct {
  log *logger.Logger
  rdb *goredis.Client
}

func NewRedisStore(log *logger.Logger) (Store, error) {
  addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
  if addr == "" {
    return nil, fmt.Errorf("missing REDIS_ADDR")
  }

  rdb := goredis.NewClient(&goredis.Options{
    Addr:        addr,
    DialTimeout: 5 * time.Second,
  })

  ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
  defer cancel()
  if err := rdb.Ping(ctx).Err(); err != nil {
    _ = rdb.Close()
    return nil, fmt.Errorf("redis ping: %w", err)
  }

  return &redisStore{
    log: log.With("store", "RedisStore"),
    rdb: rdb,
  }, nil
}

func (s *redisStore) Get(ctx context.Context, key string) (*Entry, error) {
  raw, err := s.rdb.Get(ctx, key).Bytes()
  if err != nil {
    if errors.Is(err, goredis.Nil) {
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

func (s *redisStore) Set(ctx context.Context, key string, entry Entry) error {
  raw, err := json.Marshal(entry)
  if err != nil {
    return err
  }
  return s.rdb.Set(ctx, key, raw, 0).Err()
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
  return s.rdb.Del(ctx, key).Err()
}
