package interfaces

//go:generate mockgen -source=client_repository_interface.go -destination=mocks/client_repository_interface_mock.go

import (
	"context"
	"estimate_app/internal/domain/entities"
)

// IClientRepository persists the client collection with the same contract as
// IEstimateRepository.

type IClientRepository interface {
	List(ctx context.Context) ([]entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	Save(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) error
}
