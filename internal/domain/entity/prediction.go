package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/currency-detector/internal/domain/error"
	coreport "github.com/amirhossein-jamali/currency-detector/internal/domain/port/core"
)

// Prediction is one stored classification result owned by a user
type Prediction struct {
	ID                uint64
	UserID            uint64
	CurrencyCode      string
	Confidence        float64
	NameEn            string
	NameAr            string
	DenominationValue *int // nullable in storage
	IsCounterfeit     bool
	ImagePath         string
	Timestamp         time.Time
}

// NewPrediction creates a prediction for the user from a normalized classification
func NewPrediction(userID uint64, c Classification, imagePath string, timeProvider coreport.TimeProvider) (*Prediction, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: prediction requires an owner", errs.ErrInvalidRequest)
	}
	if imagePath == "" {
		return nil, fmt.Errorf("%w: prediction requires an image path", errs.ErrInvalidRequest)
	}

	denomination := c.DenominationValue
	return &Prediction{
		UserID:            userID,
		CurrencyCode:      c.CurrencyCode,
		Confidence:        c.Confidence,
		NameEn:            c.NameEn,
		NameAr:            c.NameAr,
		DenominationValue: &denomination,
		IsCounterfeit:     c.IsCounterfeit,
		ImagePath:         imagePath,
		Timestamp:         timeProvider.Now(),
	}, nil
}

// Classification returns the classifier fields of the prediction
func (p *Prediction) Classification() Classification {
	c := Classification{
		CurrencyCode:  p.CurrencyCode,
		Confidence:    p.Confidence,
		NameEn:        p.NameEn,
		NameAr:        p.NameAr,
		IsCounterfeit: p.IsCounterfeit,
	}
	if p.DenominationValue != nil {
		c.DenominationValue = *p.DenominationValue
	}
	return c
}
