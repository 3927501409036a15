package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/PopovMP/html-ast/util"
)

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(config *util.Config) Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddress, //  default "localhost:6379"
		Password: "",                  // "" for no password, ok for now
		DB:       0,                   // 0 for default database
	})

	return &RedisStore{client: rdb}
}

func (store *RedisStore) SaveDocument(
	ctx context.Context,
	id string,
	doc StoredDocument,
	ttl time.Duration,
) error {
	jsonData, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	key := DocumentPrefix + id
	return store.client.Set(ctx, key, jsonData, ttl).Err()
}

// GetDocument retrieves a stored document. Expiry is enforced by redis
// itself through the TTL set on save.
func (store *RedisStore) GetDocument(ctx context.Context, id string) (*StoredDocument, error) {
	key := DocumentPrefix + id

	jsonData, err := store.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	var doc StoredDocument
	if err := json.Unmarshal([]byte(jsonData), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document json: %w", err)
	}

	return &doc, nil
}

func (store *RedisStore) DeleteDocument(ctx context.Context, id string) error {
	key := DocumentPrefix + id
	return store.client.Del(ctx, key).Err()
}
