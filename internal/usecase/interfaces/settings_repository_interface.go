package interfaces

//go:generate mockgen -source=settings_repository_interface.go -destination=mocks/settings_repository_interface_mock.go

import (
	"context"
	"estimate_app/internal/domain/entities"
)

type ISettingsRepository interface {
	Get(ctx context.Context) (entities.Settings, error)
	Save(ctx context.Context, s entities.Settings) (entities.Settings, error)
}
