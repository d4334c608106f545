package interfaces

//go:generate mockgen -source=relational_repository_interface.go -destination=mocks/relational_repository_interface_mock.go

import (
	"context"
	"estimate_app/internal/domain/entities"
)

// IRelationalRepository backs the parallel CRUD service. It is append-only:
// there is no update or delete.
type IRelationalRepository interface {
	ListClients(ctx context.Context) ([]entities.Client, error)
	CreateClient(ctx context.Context, c entities.Client, company string) error
	ListEstimates(ctx context.Context) ([]entities.Estimate, error)
	CreateEstimate(ctx context.Context, e entities.Estimate) error
}
