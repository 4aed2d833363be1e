package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualityFlags(t *testing.T) {
	testCases := []struct {
		name     string
		c        Classification
		expected []string
	}{
		{"clean SDG", Classification{CurrencyCode: "SDG", Confidence: 0.9, DenominationValue: 1000}, nil},
		{"other currency is not checked", Classification{CurrencyCode: "USD", Confidence: 1, DenominationValue: 3}, nil},
		{"confidence above one", Classification{CurrencyCode: "USD", Confidence: 92}, []string{FlagConfidenceOutOfRange}},
		{"negative confidence", Classification{CurrencyCode: "USD", Confidence: -0.1}, []string{FlagConfidenceOutOfRange}},
		{"unknown SDG note", Classification{CurrencyCode: "SDG", Confidence: 0.5, DenominationValue: 50}, []string{FlagUnknownDenomination}},
		{"both", Classification{CurrencyCode: "SDG", Confidence: 2, DenominationValue: 7}, []string{FlagConfidenceOutOfRange, FlagUnknownDenomination}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.c.QualityFlags())
		})
	}
}
