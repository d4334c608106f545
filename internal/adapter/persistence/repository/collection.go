package repository

import (
	"context"
	"strings"
	"sync"

	"estimate_app/internal/adapter/persistence/store"
	"estimate_app/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// collection is an insertion ordered list of records kept under one store
// key. Every read-modify-write runs under mu, so concurrent saves through
// the same repository never lose an update.
type collection[T any] struct {
	mu    sync.Mutex
	store interfaces.IRecordStore
	key   string
	idOf  func(T) string
	log   *zap.Logger
}

func newCollection[T any](s interfaces.IRecordStore, key string, idOf func(T) string, log *zap.Logger) *collection[T] {
	if log == nil {
		log = zap.NewNop()
	}
	return &collection[T]{store: s, key: key, idOf: idOf, log: log.Named(key)}
}

func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	items, err := store.Load(ctx, c.store, c.key, []T{}, c.log)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *collection[T]) list(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// get returns the zero T when no record has the id.
func (c *collection[T]) get(ctx context.Context, id string) (T, error) {
	var zero T
	id = strings.TrimSpace(id)
	if id == "" {
		return zero, nil
	}
	items, err := c.list(ctx)
	if err != nil {
		return zero, err
	}
	for _, it := range items {
		if c.idOf(it) == id {
			return it, nil
		}
	}
	return zero, nil
}

// save replaces the record with the same id in place, or appends it.
func (c *collection[T]) save(ctx context.Context, v T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return v, err
	}
	id := c.idOf(v)
	replaced := false
	for i := range items {
		if c.idOf(items[i]) == id {
			items[i] = v
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, v)
	}
	if err := store.Save(ctx, c.store, c.key, items); err != nil {
		return v, err
	}
	c.log.Debug("record saved", zap.String("id", id), zap.Bool("replaced", replaced), zap.Int("count", len(items)))
	return v, nil
}

// delete drops every record with the id. Unknown ids leave the collection
// untouched and are not an error.
func (c *collection[T]) delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id = strings.TrimSpace(id)
	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, it := range items {
		if c.idOf(it) != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	if err := store.Save(ctx, c.store, c.key, kept); err != nil {
		return err
	}
	c.log.Debug("record deleted", zap.String("id", id), zap.Int("count", len(kept)))
	return nil
}
