package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"estimate_app/internal/domain/entities"
	"estimate_app/internal/domain/identifier"
	"estimate_app/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrInvalidClientID    = errors.New("invalid client id")
	ErrInvalidClientInput = errors.New("invalid client input")
)

// ClientInput carries the client form fields.
type ClientInput struct {
	Name      string
	Email     string
	Phone     string
	Address   string
	GSTNumber string
}

type IClientUseCase interface {
	List(ctx context.Context) ([]entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	Create(ctx context.Context, in ClientInput) (entities.Client, error)
	Update(ctx context.Context, id string, in ClientInput) (entities.Client, error)
	Delete(ctx context.Context, id string) error
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
	log  *zap.Logger
	now  func() time.Time
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository, log *zap.Logger) *ClientUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ClientUseCase{repo: repo, log: log.Named("client"), now: time.Now}
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.repo.List(ctx)
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) Create(ctx context.Context, in ClientInput) (entities.Client, error) {
	c, err := entities.NewClient(in.Name, in.Email, in.Phone, in.Address, in.GSTNumber)
	if err != nil {
		return entities.Client{}, fmt.Errorf("%w: %w", ErrInvalidClientInput, err)
	}
	c.ID = identifier.GenerateID()
	c.CreatedAt = u.now().UTC()

	saved, err := u.repo.Save(ctx, c)
	if err != nil {
		u.log.Error("create failed", zap.String("client_id", c.ID), zap.Error(err))
		return entities.Client{}, err
	}
	u.log.Info("client created", zap.String("client_id", saved.ID))
	return saved, nil
}

// Update replaces every form field. ID and CreatedAt are kept from the
// stored record.
func (u *ClientUseCase) Update(ctx context.Context, id string, in ClientInput) (entities.Client, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}

	c, err := entities.NewClient(in.Name, in.Email, in.Phone, in.Address, in.GSTNumber)
	if err != nil {
		return entities.Client{}, fmt.Errorf("%w: %w", ErrInvalidClientInput, err)
	}
	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt

	saved, err := u.repo.Save(ctx, c)
	if err != nil {
		u.log.Error("update failed", zap.String("client_id", c.ID), zap.Error(err))
		return entities.Client{}, err
	}
	u.log.Info("client updated", zap.String("client_id", saved.ID))
	return saved, nil
}

// Delete removes the client. Estimates keep their own copy of it.
func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidClientID
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	u.log.Info("client deleted", zap.String("client_id", id))
	return nil
}
