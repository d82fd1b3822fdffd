package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// redisTTL bounds how long an idle session survives in Redis. There is
// no sliding refresh; a very old token simply starts over with an empty
// record.
const redisTTL = 24 * time.Hour

// RedisStore keeps session records in Redis as JSON blobs. It offers the
// same non-guarantees as MemoryStore: Get/Put are independent commands,
// so the balance race survives the backend swap.
type RedisStore struct{ Client *redis.Client }

func NewRedisStore(client *redis.Client) *RedisStore { return &RedisStore{Client: client} }

func (s *RedisStore) Get(ctx context.Context, token string) (Record, error) {
	raw, err := s.Client.Get(ctx, redisKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return Record{}, nil
	}
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *RedisStore) Put(ctx context.Context, token string, rec Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, redisKeyPrefix+token, raw, redisTTL).Err()
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.Client.Del(ctx, redisKeyPrefix+token).Err()
}
