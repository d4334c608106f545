package relational

import (
	"context"

	"estimate_app/internal/domain/entities"
	"estimate_app/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

var _ interfaces.IRelationalRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AutoMigrate creates or updates the three tables.
func (r *Repository) AutoMigrate() error {
	return r.db.AutoMigrate(&ClientModel{}, &EstimateModel{}, &EstimateItemModel{})
}

func (r *Repository) ListClients(ctx context.Context) ([]entities.Client, error) {
	var rows []ClientModel
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Client, 0, len(rows))
	for _, row := range rows {
		out = append(out, entities.Client{
			ID:      row.ID,
			Name:    row.Name,
			Email:   row.Email,
			Phone:   row.Phone,
			Address: row.Address,
		})
	}
	return out, nil
}

// CreateClient inserts one row. company has no place on the domain Client
// and is stored as given.
func (r *Repository) CreateClient(ctx context.Context, c entities.Client, company string) error {
	return r.db.WithContext(ctx).Create(&ClientModel{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Company: company,
		Address: c.Address,
	}).Error
}

// ListEstimates returns every estimate with its items. The client is
// reduced to its id; names live in the clients table.
func (r *Repository) ListEstimates(ctx context.Context) ([]entities.Estimate, error) {
	var rows []EstimateModel
	if err := r.db.WithContext(ctx).Preload("Items").Order("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Estimate, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEntity(row))
	}
	return out, nil
}

// CreateEstimate inserts the estimate row and its item rows in one
// transaction.
func (r *Repository) CreateEstimate(ctx context.Context, e entities.Estimate) error {
	row := toModel(e)
	items := row.Items
	row.Items = nil

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

func toModel(e entities.Estimate) EstimateModel {
	items := make([]EstimateItemModel, 0, len(e.Items))
	for _, it := range e.Items {
		items = append(items, EstimateItemModel{
			ID:          it.ID,
			EstimateID:  e.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Tax:         it.Tax,
			Amount:      it.Amount,
		})
	}
	return EstimateModel{
		ID:             e.ID,
		EstimateNumber: e.EstimateNumber,
		ClientID:       e.Client.ID,
		SubTotal:       e.SubTotal,
		Tax:            e.Tax,
		Discount:       e.Discount,
		Total:          e.Total,
		Status:         string(e.Status),
		Date:           e.Date,
		DueDate:        e.DueDate,
		Terms:          e.Terms,
		Notes:          e.Notes,
		Logo:           e.Logo,
		CreatedAt:      e.CreatedAt,
		Items:          items,
	}
}

func toEntity(row EstimateModel) entities.Estimate {
	items := make([]entities.EstimateItem, 0, len(row.Items))
	for _, it := range row.Items {
		items = append(items, entities.EstimateItem{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Tax:         it.Tax,
			Amount:      it.Amount,
		})
	}
	return entities.Estimate{
		ID:             row.ID,
		EstimateNumber: row.EstimateNumber,
		Client:         entities.Client{ID: row.ClientID},
		Items:          items,
		SubTotal:       row.SubTotal,
		Tax:            row.Tax,
		Discount:       row.Discount,
		Total:          row.Total,
		Status:         entities.EstimateStatus(row.Status),
		Date:           row.Date,
		DueDate:        row.DueDate,
		Terms:          row.Terms,
		Notes:          row.Notes,
		Logo:           row.Logo,
		CreatedAt:      row.CreatedAt,
	}
}
