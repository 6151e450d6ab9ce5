package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each collection as a Redis list of JSON documents under
// "docstore:<collection>". The equality filter is applied on read.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func collectionKey(collection string) string {
	return "docstore:" + collection
}

func (s *RedisStore) Where(ctx context.Context, collection, field, value string) ([]Document, error) {
	if collection == "" {
		return nil, ErrEmptyCollection
	}

	raws, err := s.client.LRange(ctx, collectionKey(collection), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", collection, err)
	}

	var docs []Document
	for i, raw := range raws {
		var doc Document
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return nil, fmt.Errorf("decode %s document %d: %w", collection, i, err)
		}
		if matches(doc, field, value) {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func (s *RedisStore) Insert(ctx context.Context, collection string, doc Document) error {
	if collection == "" {
		return ErrEmptyCollection
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", collection, err)
	}
	if err := s.client.RPush(ctx, collectionKey(collection), data).Err(); err != nil {
		return fmt.Errorf("insert into %s: %w", collection, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
