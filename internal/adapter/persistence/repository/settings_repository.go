package repository

import (
	"context"
	"sync"

	"estimate_app/internal/adapter/persistence/store"
	"estimate_app/internal/domain/entities"
	"estimate_app/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// SettingsRepository keeps the single settings document under "settings".
// An absent or unreadable document reads as entities.DefaultSettings().
type SettingsRepository struct {
	mu    sync.Mutex
	store interfaces.IRecordStore
	log   *zap.Logger
}

var _ interfaces.ISettingsRepository = (*SettingsRepository)(nil)

func NewSettingsRepository(s interfaces.IRecordStore, log *zap.Logger) *SettingsRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &SettingsRepository{store: s, log: log.Named(store.KeySettings)}
}

func (r *SettingsRepository) Get(ctx context.Context) (entities.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return store.Load(ctx, r.store, store.KeySettings, entities.DefaultSettings(), r.log)
}

func (r *SettingsRepository) Save(ctx context.Context, s entities.Settings) (entities.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := store.Save(ctx, r.store, store.KeySettings, s); err != nil {
		return entities.Settings{}, err
	}
	return s, nil
}
