package repository

import (
	"context"

	"estimate_app/internal/adapter/persistence/store"
	"estimate_app/internal/domain/entities"
	"estimate_app/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ClientRepository persists clients as a JSON array under the "clients" key.
type ClientRepository struct {
	c *collection[entities.Client]
}

var _ interfaces.IClientRepository = (*ClientRepository)(nil)

func NewClientRepository(s interfaces.IRecordStore, log *zap.Logger) *ClientRepository {
	return &ClientRepository{
		c: newCollection(s, store.KeyClients, func(c entities.Client) string { return c.ID }, log),
	}
}

func (r *ClientRepository) List(ctx context.Context) ([]entities.Client, error) {
	return r.c.list(ctx)
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	return r.c.get(ctx, id)
}

func (r *ClientRepository) Save(ctx context.Context, c entities.Client) (entities.Client, error) {
	return r.c.save(ctx, c)
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}
