package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/currency-detector/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/currency-detector/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrediction(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	c := Classification{
		CurrencyCode:      "USD",
		Confidence:        0.92,
		NameEn:            "One Dollar",
		NameAr:            "دولار",
		DenominationValue: 1,
	}

	t.Run("Valid prediction", func(t *testing.T) {
		p, err := NewPrediction(2, c, "/static/uploads/a.jpg", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(2), p.UserID)
		require.NotNil(t, p.DenominationValue)
		assert.Equal(t, 1, *p.DenominationValue)
		assert.Equal(t, fixedTime, p.Timestamp)
		assert.Equal(t, c, p.Classification())
	})

	t.Run("Missing owner", func(t *testing.T) {
		_, err := NewPrediction(0, c, "/static/uploads/a.jpg", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Missing image path", func(t *testing.T) {
		_, err := NewPrediction(2, c, "", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Null denomination reads back as zero", func(t *testing.T) {
		p := &Prediction{CurrencyCode: "SDG"}
		assert.Equal(t, 0, p.Classification().DenominationValue)
	})
}
