// Package store implements the entity store: named collections of
// JSON-serializable records keyed by id, persisted as one JSON array per
// Redis key. Every operation rewrites the full collection; there are no
// partial writes and no cross-collection atomicity.
package store

import (
	"context"
	"encoding/json"

	"internboard/internal/common/errors"
	"internboard/internal/common/logger"
	"internboard/internal/common/metrics"

	"github.com/redis/go-redis/v9"
)

// Entity is any record addressable by a string id.
type Entity interface {
	EntityID() string
}

// Store wraps the storage medium shared by all collections.
type Store struct {
	client    *redis.Client
	namespace string
	logger    logger.Logger
}

func New(client *redis.Client, namespace string, log logger.Logger) *Store {
	return &Store{
		client:    client,
		namespace: namespace,
		logger:    log.WithFields(map[string]interface{}{"component": "store"}),
	}
}

// Key returns the medium key for a collection or pointer name.
func (s *Store) Key(name string) string {
	return s.namespace + ":" + name
}

// ==========================
// Pointer operations
// ==========================

// GetPointer reads a single-object key into out. Returns false when the key
// is unset. A malformed value is treated as unset rather than an error.
func (s *Store) GetPointer(ctx context.Context, name string, out interface{}) (bool, error) {
	val, err := s.client.Get(ctx, s.Key(name)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, errors.NewStorageFailureError(name, err)
	}

	if err := json.Unmarshal([]byte(val), out); err != nil {
		s.logger.Warn("malformed pointer value, treating as unset", map[string]interface{}{
			"pointer": name,
			"error":   err.Error(),
		})
		return false, nil
	}
	return true, nil
}

// SetPointer durably writes a single-object key.
func (s *Store) SetPointer(ctx context.Context, name string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.NewStorageFailureError(name, err)
	}
	if err := s.client.Set(ctx, s.Key(name), data, 0).Err(); err != nil {
		return errors.NewStorageFailureError(name, err)
	}
	return nil
}

// ClearPointer removes a single-object key unconditionally.
func (s *Store) ClearPointer(ctx context.Context, name string) error {
	if err := s.client.Del(ctx, s.Key(name)).Err(); err != nil {
		return errors.NewStorageFailureError(name, err)
	}
	return nil
}

// ==========================
// Collections
// ==========================

// Collection is a typed view over one named collection in the store.
type Collection[T Entity] struct {
	store *Store
	name  string
}

func NewCollection[T Entity](s *Store, name string) *Collection[T] {
	return &Collection[T]{store: s, name: name}
}

func (c *Collection[T]) Name() string { return c.name }

// LoadAll returns the stored sequence, empty if the collection has never been
// written.
func (c *Collection[T]) LoadAll(ctx context.Context) ([]T, error) {
	metrics.StoreOperations.WithLabelValues(c.name, "loadAll").Inc()

	val, err := c.store.client.Get(ctx, c.store.Key(c.name)).Result()
	if err == redis.Nil {
		return []T{}, nil
	}
	if err != nil {
		metrics.StoreFailures.WithLabelValues(c.name, "loadAll").Inc()
		return nil, errors.NewStorageFailureError(c.name, err)
	}

	var records []T
	if err := json.Unmarshal([]byte(val), &records); err != nil {
		metrics.StoreFailures.WithLabelValues(c.name, "loadAll").Inc()
		return nil, errors.NewStorageFailureError(c.name, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Find returns the record with the given id, if present.
func (c *Collection[T]) Find(ctx context.Context, id string) (T, bool, error) {
	var zero T
	records, err := c.LoadAll(ctx)
	if err != nil {
		return zero, false, err
	}
	for _, r := range records {
		if r.EntityID() == id {
			return r, true, nil
		}
	}
	return zero, false, nil
}

// Upsert replaces the record with the same id in place, preserving its
// position, or appends it. Upserting the same value twice leaves the stored
// state unchanged.
func (c *Collection[T]) Upsert(ctx context.Context, record T) error {
	metrics.StoreOperations.WithLabelValues(c.name, "upsert").Inc()

	records, err := c.LoadAll(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i, r := range records {
		if r.EntityID() == record.EntityID() {
			records[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, record)
	}

	return c.persist(ctx, "upsert", records)
}

// Remove deletes the record with matching id; no-op when absent.
func (c *Collection[T]) Remove(ctx context.Context, id string) error {
	metrics.StoreOperations.WithLabelValues(c.name, "remove").Inc()

	records, err := c.LoadAll(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, r := range records {
		if r.EntityID() != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return nil
	}

	return c.persist(ctx, "remove", kept)
}

func (c *Collection[T]) persist(ctx context.Context, operation string, records []T) error {
	data, err := json.Marshal(records)
	if err != nil {
		metrics.StoreFailures.WithLabelValues(c.name, operation).Inc()
		return errors.NewStorageFailureError(c.name, err)
	}

	if err := c.store.client.Set(ctx, c.store.Key(c.name), data, 0).Err(); err != nil {
		metrics.StoreFailures.WithLabelValues(c.name, operation).Inc()
		c.store.logger.Error("collection write rejected", map[string]interface{}{
			"collection": c.name,
			"operation":  operation,
			"error":      err.Error(),
		})
		return errors.NewStorageFailureError(c.name, err)
	}
	return nil
}
