// Package store implements the record store (a key-value namespace of JSON
// documents) on several backends.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"estimate_app/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Well-known keys of the namespace.
const (
	KeyClients   = "clients"
	KeyEstimates = "estimates"
	KeySettings  = "settings"
)

// Load decodes the document stored under key into a T.
//
// An absent key yields def. A payload that fails to decode also yields def
// and is logged; it is never surfaced as an error. Backend failures are
// returned.
func Load[T any](ctx context.Context, s interfaces.IRecordStore, key string, def T, log *zap.Logger) (T, error) {
	raw, found, err := s.Get(ctx, key)
	if err != nil {
		return def, fmt.Errorf("record store get %q: %w", key, err)
	}
	if !found || len(raw) == 0 {
		return def, nil
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		if log != nil {
			log.Warn("malformed record payload, using default",
				zap.String("key", key), zap.Int("payload_len", len(raw)), zap.Error(err))
		}
		return def, nil
	}
	return out, nil
}

// Save encodes v and writes it under key, replacing the previous document.
func Save[T any](ctx context.Context, s interfaces.IRecordStore, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("record store encode %q: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("record store set %q: %w", key, err)
	}
	return nil
}
