package prediction

import (
	"github.com/amirhossein-jamali/currency-detector/internal/domain/port/core"
	"github.com/amirhossein-jamali/currency-detector/internal/domain/port/external"
	"github.com/amirhossein-jamali/currency-detector/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/currency-detector/internal/domain/port/usecase"
)

// PredictionUseCase runs the classification workflow and serves the prediction history
type PredictionUseCase struct {
	unitOfWork     persistence.UnitOfWork
	predictionRepo persistence.PredictionRepository
	imageStore     external.ImageStore
	classifier     external.BanknoteClassifier
	normalizer     external.ResponseNormalizer
	audit          usecase.AuditRecorder
	timeProvider   core.TimeProvider
	logger         core.Logger
}

var _ usecase.PredictionUseCase = (*PredictionUseCase)(nil)

// NewPredictionUseCase creates a new PredictionUseCase
func NewPredictionUseCase(
	unitOfWork persistence.UnitOfWork,
	predictionRepo persistence.PredictionRepository,
	imageStore external.ImageStore,
	classifier external.BanknoteClassifier,
	normalizer external.ResponseNormalizer,
	audit usecase.AuditRecorder,
	timeProvider core.TimeProvider,
	logger core.Logger,
) *PredictionUseCase {
	return &PredictionUseCase{
		unitOfWork:     unitOfWork,
		predictionRepo: predictionRepo,
		imageStore:     imageStore,
		classifier:     classifier,
		normalizer:     normalizer,
		audit:          audit,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}
