package usecase

import (
	"context"
	"time"

	"estimate_app/internal/domain/sample"
	"estimate_app/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// SeedSampleData writes one sample client and one pending estimate for it,
// only when both collections are empty. It reports whether anything was written.
func SeedSampleData(ctx context.Context, clients interfaces.IClientRepository, estimates interfaces.IEstimateRepository, now time.Time, log *zap.Logger) (bool, error) {
	if log == nil {
		log = zap.NewNop()
	}
	existingClients, err := clients.List(ctx)
	if err != nil {
		return false, err
	}
	existingEstimates, err := estimates.List(ctx)
	if err != nil {
		return false, err
	}
	if len(existingClients) > 0 || len(existingEstimates) > 0 {
		return false, nil
	}

	client := sample.Client(now)
	if _, err := clients.Save(ctx, client); err != nil {
		return false, err
	}
	estimate := sample.Estimate(client, now)
	if _, err := estimates.Save(ctx, estimate); err != nil {
		return false, err
	}
	log.Info("sample data seeded",
		zap.String("client_id", client.ID),
		zap.String("estimate_number", estimate.EstimateNumber))
	return true, nil
}
