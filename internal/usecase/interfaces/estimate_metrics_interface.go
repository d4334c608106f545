package interfaces

//go:generate mockgen -source=estimate_metrics_interface.go -destination=mocks/estimate_metrics_interface_mock.go

// IEstimateMetrics receives domain events worth counting.
type IEstimateMetrics interface {
	EstimateSaved(op string)
	EstimateStatusChanged(status string)
	EstimatesExported(rows int)
}
