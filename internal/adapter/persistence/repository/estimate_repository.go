package repository

import (
	"context"

	"estimate_app/internal/adapter/persistence/store"
	"estimate_app/internal/domain/entities"
	"estimate_app/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// EstimateRepository persists estimates as a JSON array under the
// "estimates" key. Each estimate carries its own client snapshot; editing
// or deleting a client later does not touch stored estimates.
type EstimateRepository struct {
	c *collection[entities.Estimate]
}

var _ interfaces.IEstimateRepository = (*EstimateRepository)(nil)

func NewEstimateRepository(s interfaces.IRecordStore, log *zap.Logger) *EstimateRepository {
	return &EstimateRepository{
		c: newCollection(s, store.KeyEstimates, func(e entities.Estimate) string { return e.ID }, log),
	}
}

func (r *EstimateRepository) List(ctx context.Context) ([]entities.Estimate, error) {
	return r.c.list(ctx)
}

func (r *EstimateRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	return r.c.get(ctx, id)
}

func (r *EstimateRepository) Save(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	return r.c.save(ctx, e)
}

func (r *EstimateRepository) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}
