package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"estimate_app/internal/domain/calculator"
	"estimate_app/internal/domain/entities"
	"estimate_app/internal/domain/export"
	"estimate_app/internal/domain/identifier"
	"estimate_app/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const defaultRecentLimit = 5

var (
	ErrEstimateNotFound        = errors.New("estimate not found")
	ErrInvalidEstimateID       = errors.New("invalid estimate id")
	ErrInvalidEstimateInput    = errors.New("invalid estimate input")
	ErrEstimateClientRequired  = errors.New("client is required")
	ErrEstimateClientNotFound  = errors.New("selected client not found")
	ErrEstimateItemsRequired   = errors.New("at least one item is required")
	ErrEstimateDateRequired    = errors.New("date is required")
	ErrEstimateDueDateRequired = errors.New("due date is required")
	ErrInvalidEstimateStatus   = errors.New("invalid estimate status")
	ErrEstimateNotConvertible  = errors.New("estimate cannot be converted")
)

// EstimateItemInput is one row of the item table. ID is kept when present
// so edits do not churn item ids.
type EstimateItemInput struct {
	ID          string
	Description string
	Quantity    float64
	Rate        float64
	Tax         float64
}

// EstimateInput carries the estimate form. Empty Terms and Notes on create
// fall back to the default terms from settings.
type EstimateInput struct {
	ClientID string
	Items    []EstimateItemInput
	Discount float64
	Date     time.Time
	DueDate  time.Time
	Terms    string
	Notes    string
	Logo     string
}

// EstimateStats feeds the dashboard cards. ApprovedCount includes converted
// estimates.
type EstimateStats struct {
	TotalCount    int
	TotalValue    float64
	PendingCount  int
	ApprovedCount int
}

// EstimateCalculation is the live totals panel: items with amounts filled in
// plus the figures under the table.
type EstimateCalculation struct {
	Items  []entities.EstimateItem
	Totals calculator.Totals
}

// ExportFile is a ready to download attachment.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
	Rows        int
}

// IEstimateUseCase exposes the estimate operations behind the list, form,
// detail and dashboard screens.
type IEstimateUseCase interface {
	List(ctx context.Context, f EstimateFilter) ([]entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	Create(ctx context.Context, in EstimateInput) (entities.Estimate, error)
	Update(ctx context.Context, id string, in EstimateInput) (entities.Estimate, error)
	UpdateStatus(ctx context.Context, id string, status string) (entities.Estimate, error)
	ConvertToInvoice(ctx context.Context, id string) (entities.Estimate, error)
	Delete(ctx context.Context, id string) error
	Calculate(items []EstimateItemInput, discount float64) EstimateCalculation
	Stats(ctx context.Context) (EstimateStats, error)
	Recent(ctx context.Context, limit int) ([]entities.Estimate, error)
	Export(ctx context.Context, f EstimateFilter) (ExportFile, error)
}

type EstimateUseCase struct {
	repo     interfaces.IEstimateRepository
	clients  interfaces.IClientRepository
	settings interfaces.ISettingsRepository
	numbers  *identifier.Generator
	metrics  interfaces.IEstimateMetrics
	log      *zap.Logger
	now      func() time.Time
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(
	repo interfaces.IEstimateRepository,
	clients interfaces.IClientRepository,
	settings interfaces.ISettingsRepository,
	log *zap.Logger,
) *EstimateUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &EstimateUseCase{
		repo:     repo,
		clients:  clients,
		settings: settings,
		numbers:  identifier.NewGenerator(),
		metrics:  nopMetrics{},
		log:      log.Named("estimate"),
		now:      time.Now,
	}
}

// WithMetrics sets the sink for domain counters.
func (u *EstimateUseCase) WithMetrics(m interfaces.IEstimateMetrics) *EstimateUseCase {
	if m != nil {
		u.metrics = m
	}
	return u
}

func (u *EstimateUseCase) List(ctx context.Context, f EstimateFilter) ([]entities.Estimate, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return f.Apply(all), nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

// Create issues a new pending estimate with a fresh id and number.
func (u *EstimateUseCase) Create(ctx context.Context, in EstimateInput) (entities.Estimate, error) {
	client, items, err := u.resolveInput(ctx, in)
	if err != nil {
		return entities.Estimate{}, err
	}

	settings, err := u.settings.Get(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	terms := strings.TrimSpace(in.Terms)
	if terms == "" {
		terms = settings.DefaultTerms.TermsAndConditions
	}
	notes := strings.TrimSpace(in.Notes)
	if notes == "" {
		notes = settings.DefaultTerms.Notes
	}
	logo := in.Logo
	if logo == "" {
		logo = settings.CompanyProfile.Logo
	}

	now := u.now()
	e := entities.Estimate{
		ID:             identifier.GenerateID(),
		EstimateNumber: u.numbers.EstimateNumber(),
		Client:         client,
		Items:          items,
		Status:         entities.EstimateStatusPending,
		Date:           in.Date.UTC(),
		DueDate:        in.DueDate.UTC(),
		Terms:          terms,
		Notes:          notes,
		Logo:           logo,
		CreatedAt:      now.UTC(),
	}
	applyTotals(&e, in.Discount)

	saved, err := u.repo.Save(ctx, e)
	if err != nil {
		u.log.Error("create failed", zap.String("estimate_id", e.ID), zap.Error(err))
		return entities.Estimate{}, err
	}
	u.metrics.EstimateSaved("create")
	u.log.Info("estimate created",
		zap.String("estimate_id", saved.ID),
		zap.String("estimate_number", saved.EstimateNumber),
		zap.String("client_id", client.ID),
		zap.Float64("total", saved.Total))
	return saved, nil
}

// Update re-saves an estimate from the form. ID, EstimateNumber, Status and
// CreatedAt are kept; the client snapshot is taken again from the current
// client record.
func (u *EstimateUseCase) Update(ctx context.Context, id string, in EstimateInput) (entities.Estimate, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}

	client, items, err := u.resolveInput(ctx, in)
	if err != nil {
		return entities.Estimate{}, err
	}

	e := existing
	e.Client = client
	e.Items = items
	e.Date = in.Date.UTC()
	e.DueDate = in.DueDate.UTC()
	e.Terms = strings.TrimSpace(in.Terms)
	e.Notes = strings.TrimSpace(in.Notes)
	if in.Logo != "" {
		e.Logo = in.Logo
	}
	applyTotals(&e, in.Discount)

	saved, err := u.repo.Save(ctx, e)
	if err != nil {
		u.log.Error("update failed", zap.String("estimate_id", e.ID), zap.Error(err))
		return entities.Estimate{}, err
	}
	u.metrics.EstimateSaved("update")
	u.log.Info("estimate updated", zap.String("estimate_id", saved.ID), zap.Float64("total", saved.Total))
	return saved, nil
}

// UpdateStatus writes any valid status. Lifecycle rules are not enforced
// here; the status selector offers every value.
func (u *EstimateUseCase) UpdateStatus(ctx context.Context, id string, status string) (entities.Estimate, error) {
	st, ok := entities.ParseEstimateStatus(status)
	if !ok {
		return entities.Estimate{}, ErrInvalidEstimateStatus
	}
	return u.setStatus(ctx, id, st)
}

// ConvertToInvoice marks the estimate converted. Converted and cancelled
// estimates are rejected.
func (u *EstimateUseCase) ConvertToInvoice(ctx context.Context, id string) (entities.Estimate, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if !e.Status.CanConvert() {
		u.log.Warn("convert rejected", zap.String("estimate_id", e.ID), zap.String("status", string(e.Status)))
		return entities.Estimate{}, ErrEstimateNotConvertible
	}
	return u.save(ctx, e, entities.EstimateStatusConverted)
}

func (u *EstimateUseCase) setStatus(ctx context.Context, id string, st entities.EstimateStatus) (entities.Estimate, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	return u.save(ctx, e, st)
}

func (u *EstimateUseCase) save(ctx context.Context, e entities.Estimate, st entities.EstimateStatus) (entities.Estimate, error) {
	from := e.Status
	e.Status = st
	saved, err := u.repo.Save(ctx, e)
	if err != nil {
		return entities.Estimate{}, err
	}
	u.metrics.EstimateStatusChanged(string(st))
	u.log.Info("estimate status changed",
		zap.String("estimate_id", saved.ID),
		zap.String("from", string(from)),
		zap.String("to", string(st)))
	return saved, nil
}

func (u *EstimateUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEstimateID
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	u.log.Info("estimate deleted", zap.String("estimate_id", id))
	return nil
}

// Calculate computes live totals without validating or persisting anything.
func (u *EstimateUseCase) Calculate(items []EstimateItemInput, discount float64) EstimateCalculation {
	rows := make([]entities.EstimateItem, len(items))
	for i, it := range items {
		rows[i] = entities.EstimateItem{
			ID:          it.ID,
			Description: strings.TrimSpace(it.Description),
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Tax:         it.Tax,
		}
	}
	rows = calculator.WithAmounts(rows)
	return EstimateCalculation{Items: rows, Totals: calculator.Calculate(rows, discount)}
}

func (u *EstimateUseCase) Stats(ctx context.Context) (EstimateStats, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return EstimateStats{}, err
	}

	stats := EstimateStats{TotalCount: len(all)}
	value := decimal.Zero
	for _, e := range all {
		value = value.Add(decimal.NewFromFloat(e.Total))
		switch e.Status {
		case entities.EstimateStatusPending:
			stats.PendingCount++
		case entities.EstimateStatusApproved, entities.EstimateStatusConverted:
			stats.ApprovedCount++
		}
	}
	stats.TotalValue = value.InexactFloat64()
	return stats, nil
}

// Recent returns the newest estimates by date. A non-positive limit uses
// the dashboard default.
func (u *EstimateUseCase) Recent(ctx context.Context, limit int) ([]entities.Estimate, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sorted := SortEstimatesByDate(all)
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

// Export renders the filtered list as CSV.
func (u *EstimateUseCase) Export(ctx context.Context, f EstimateFilter) (ExportFile, error) {
	list, err := u.List(ctx, f)
	if err != nil {
		return ExportFile{}, err
	}
	u.metrics.EstimatesExported(len(list))
	u.log.Info("estimates exported", zap.Int("rows", len(list)))
	return ExportFile{
		Name:        export.ExportFileName(u.now()),
		ContentType: export.ContentTypeCSV,
		Data:        export.ExportToCSV(list),
		Rows:        len(list),
	}, nil
}

// resolveInput validates the form and looks up the client snapshot.
func (u *EstimateUseCase) resolveInput(ctx context.Context, in EstimateInput) (entities.Client, []entities.EstimateItem, error) {
	clientID := strings.TrimSpace(in.ClientID)
	switch {
	case clientID == "":
		return entities.Client{}, nil, ErrEstimateClientRequired
	case in.Date.IsZero():
		return entities.Client{}, nil, ErrEstimateDateRequired
	case in.DueDate.IsZero():
		return entities.Client{}, nil, ErrEstimateDueDateRequired
	case len(in.Items) == 0:
		return entities.Client{}, nil, ErrEstimateItemsRequired
	}
	if in.Discount < 0 {
		return entities.Client{}, nil, fmt.Errorf("%w: discount must not be negative", ErrInvalidEstimateInput)
	}

	items := make([]entities.EstimateItem, 0, len(in.Items))
	for i, raw := range in.Items {
		it, err := entities.NewEstimateItem(raw.Description, raw.Quantity, raw.Rate, raw.Tax)
		if err != nil {
			return entities.Client{}, nil, fmt.Errorf("%w: item %d: %w", ErrInvalidEstimateInput, i+1, err)
		}
		it.ID = strings.TrimSpace(raw.ID)
		if it.ID == "" {
			it.ID = identifier.GenerateID()
		}
		items = append(items, it)
	}

	client, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return entities.Client{}, nil, err
	}
	if client.ID == "" {
		u.log.Warn("selected client not found", zap.String("client_id", clientID))
		return entities.Client{}, nil, ErrEstimateClientNotFound
	}
	return client, items, nil
}

// applyTotals recomputes item amounts and every total from the items.
func applyTotals(e *entities.Estimate, discount float64) {
	e.Items = calculator.WithAmounts(e.Items)
	totals := calculator.Calculate(e.Items, discount)
	e.SubTotal = totals.SubTotal
	e.Tax = totals.Tax
	e.Discount = totals.Discount
	e.Total = totals.Total
}

type nopMetrics struct{}

func (nopMetrics) EstimateSaved(string)         {}
func (nopMetrics) EstimateStatusChanged(string) {}
func (nopMetrics) EstimatesExported(int)        {}
