package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"estimate_app/internal/domain/entities"
	"estimate_app/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidCompanyProfile = errors.New("invalid company profile")
	ErrInvalidDefaultTerms   = errors.New("invalid default terms")
)

// ISettingsUseCase backs the settings page. Each update replaces one section
// and leaves the other untouched.
type ISettingsUseCase interface {
	Get(ctx context.Context) (entities.Settings, error)
	UpdateCompanyProfile(ctx context.Context, p entities.CompanyProfile) (entities.Settings, error)
	UpdateDefaultTerms(ctx context.Context, t entities.DefaultTerms) (entities.Settings, error)
}

type SettingsUseCase struct {
	repo interfaces.ISettingsRepository
	log  *zap.Logger
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository, log *zap.Logger) *SettingsUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &SettingsUseCase{repo: repo, log: log.Named("settings")}
}

func (u *SettingsUseCase) Get(ctx context.Context) (entities.Settings, error) {
	return u.repo.Get(ctx)
}

func (u *SettingsUseCase) UpdateCompanyProfile(ctx context.Context, p entities.CompanyProfile) (entities.Settings, error) {
	p = entities.CompanyProfile{
		CompanyName:   strings.TrimSpace(p.CompanyName),
		Email:         strings.TrimSpace(p.Email),
		Phone:         strings.TrimSpace(p.Phone),
		Address:       strings.TrimSpace(p.Address),
		Website:       strings.TrimSpace(p.Website),
		TaxIdentifier: strings.TrimSpace(p.TaxIdentifier),
		Logo:          p.Logo,
	}
	if err := p.Validate(); err != nil {
		return entities.Settings{}, fmt.Errorf("%w: %w", ErrInvalidCompanyProfile, err)
	}

	current, err := u.repo.Get(ctx)
	if err != nil {
		return entities.Settings{}, err
	}
	current.CompanyProfile = p
	saved, err := u.repo.Save(ctx, current)
	if err != nil {
		return entities.Settings{}, err
	}
	u.log.Info("company profile updated", zap.String("company", p.CompanyName))
	return saved, nil
}

func (u *SettingsUseCase) UpdateDefaultTerms(ctx context.Context, t entities.DefaultTerms) (entities.Settings, error) {
	if err := t.Validate(); err != nil {
		return entities.Settings{}, fmt.Errorf("%w: %w", ErrInvalidDefaultTerms, err)
	}

	current, err := u.repo.Get(ctx)
	if err != nil {
		return entities.Settings{}, err
	}
	current.DefaultTerms = t
	saved, err := u.repo.Save(ctx, current)
	if err != nil {
		return entities.Settings{}, err
	}
	u.log.Info("default terms updated")
	return saved, nil
}
