package prediction

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/currency-detector/internal/domain/entity"
	errs "github.com/amirhossein-jamali/currency-detector/internal/domain/error"
	"github.com/amirhossein-jamali/currency-detector/internal/domain/port/usecase"
)

// Classify stores the uploaded image, asks the classifier about it and records the answer.
//
// Classifier and normalizer failures abort before any row is written. The stored
// image is kept whatever happens after it was saved.
func (p *PredictionUseCase) Classify(ctx context.Context, user *entity.User, upload usecase.ImageUpload) (*usecase.PredictionResult, error) {
	if len(upload.Data) == 0 {
		return nil, fmt.Errorf("%w: empty file", errs.ErrInvalidUpload)
	}

	stored, err := p.imageStore.Save(ctx, upload.FileName, upload.Data)
	if err != nil {
		p.logger.Error("Failed to store uploaded image", map[string]any{
			"userId":   user.ID,
			"fileName": upload.FileName,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", errs.ErrInternalServer, err)
	}

	raw, err := p.classifier.Classify(ctx, upload.Data)
	if err != nil {
		fields := map[string]any{
			"userId":   user.ID,
			"provider": p.classifier.Name(),
			"image":    stored.FileName,
			"error":    err.Error(),
		}
		p.logger.Error("Classification call failed", fields)
		return nil, err
	}

	classification, err := p.normalizer.Normalize(raw)
	if err != nil {
		fields := map[string]any{
			"userId": user.ID,
			"image":  stored.FileName,
		}
		var lf errs.LogFielder
		if errors.As(err, &lf) {
			for k, v := range lf.LogFields() {
				fields[k] = v
			}
		} else {
			fields["error"] = err.Error()
		}
		p.logger.Error("Classifier response could not be normalized", fields)
		return nil, err
	}

	flags := classification.QualityFlags()
	if len(flags) > 0 {
		p.logger.Warn("Classification accepted with quality flags", map[string]any{
			"userId":       user.ID,
			"flags":        flags,
			"confidence":   classification.Confidence,
			"denomination": classification.DenominationValue,
			"currencyCode": classification.CurrencyCode,
		})
	}

	prediction, err := entity.NewPrediction(user.ID, classification, stored.PublicPath, p.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := p.persist(ctx, prediction); err != nil {
		return nil, err
	}

	p.audit.Record(ctx, entity.ActionPredict,
		fmt.Sprintf("User %s predicted %s (%s) with confidence %.2f",
			user.Email, classification.NameEn, classification.CurrencyCode, classification.Confidence),
		&user.ID)

	return &usecase.PredictionResult{
		Prediction:   prediction,
		QualityFlags: flags,
	}, nil
}

// persist inserts the prediction inside one unit of work
func (p *PredictionUseCase) persist(ctx context.Context, prediction *entity.Prediction) error {
	txCtx, err := p.unitOfWork.Begin(ctx)
	if err != nil {
		p.logger.Error("Failed to begin transaction", map[string]any{
			"userId": prediction.UserID,
			"error":  err.Error(),
		})
		return err
	}

	// Ensure rollback on panic
	defer func() {
		if r := recover(); r != nil {
			_ = p.unitOfWork.Rollback(txCtx)
			panic(r)
		}
	}()

	if err := p.unitOfWork.GetPredictionRepository(txCtx).Create(txCtx, prediction); err != nil {
		if rbErr := p.unitOfWork.Rollback(txCtx); rbErr != nil {
			p.logger.Error("Failed to rollback transaction", map[string]any{
				"userId": prediction.UserID,
				"error":  rbErr.Error(),
			})
		}
		p.logger.Error("Failed to save prediction", map[string]any{
			"userId": prediction.UserID,
			"error":  err.Error(),
		})
		return err
	}

	if err := p.unitOfWork.Commit(txCtx); err != nil {
		p.logger.Error("Failed to commit transaction", map[string]any{
			"userId": prediction.UserID,
			"error":  err.Error(),
		})
		return err
	}

	return nil
}
