package interfaces

//go:generate mockgen -source=estimate_repository_interface.go -destination=mocks/estimate_repository_interface_mock.go

import (
	"context"
	"estimate_app/internal/domain/entities"
)

// IEstimateRepository persists the estimate collection.
//
// GetByID returns a zero Estimate (empty ID) when nothing matches. Save
// replaces by id or appends; the caller embeds the client snapshot and sets
// the status beforehand. Delete of an unknown id is a no-op.

type IEstimateRepository interface {
	List(ctx context.Context) ([]entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	Save(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	Delete(ctx context.Context, id string) error
}
