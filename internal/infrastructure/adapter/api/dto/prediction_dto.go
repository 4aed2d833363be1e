package dto

import (
	"time"

	"github.com/amirhossein-jamali/currency-detector/internal/domain/entity"
)

// StatusSuccess marks a freshly classified prediction
const StatusSuccess = "success"

// PredictionResponse represents a stored prediction
type PredictionResponse struct {
	ID                uint64    `json:"id"`
	Status            string    `json:"status,omitempty"`
	CurrencyCode      string    `json:"currency_code"`
	NameEn            string    `json:"name_en"`
	NameAr            string    `json:"name_ar"`
	Confidence        float64   `json:"confidence"`
	DenominationValue *int      `json:"denomination_value"`
	IsCounterfeit     bool      `json:"is_counterfeit"`
	ImageURL          string    `json:"image_url"`
	Timestamp         time.Time `json:"timestamp"`
	QualityFlags      []string  `json:"quality_flags,omitempty"`
}

// ClearHistoryResponse acknowledges a history wipe
type ClearHistoryResponse struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}

// NewPredictionResponse maps a stored prediction to its API form
func NewPredictionResponse(p *entity.Prediction) PredictionResponse {
	return PredictionResponse{
		ID:                p.ID,
		CurrencyCode:      p.CurrencyCode,
		NameEn:            p.NameEn,
		NameAr:            p.NameAr,
		Confidence:        p.Confidence,
		DenominationValue: p.DenominationValue,
		IsCounterfeit:     p.IsCounterfeit,
		ImageURL:          p.ImagePath,
		Timestamp:         p.Timestamp,
	}
}

// NewPredictionListResponse maps a history, never returning null
func NewPredictionListResponse(predictions []*entity.Prediction) []PredictionResponse {
	out := make([]PredictionResponse, 0, len(predictions))
	for _, p := range predictions {
		out = append(out, NewPredictionResponse(p))
	}
	return out
}
