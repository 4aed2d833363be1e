package entity

// Quality flags raised on a classification that parsed but looks suspicious
const (
	FlagConfidenceOutOfRange = "confidence_out_of_range"
	FlagUnknownDenomination  = "unknown_denomination"
)

// KnownDenominations lists the banknote values the classifier is asked to report, per currency
var KnownDenominations = map[string][]int{
	"SDG": {100, 200, 500, 1000},
}

// Classification is the normalized six-field answer of the banknote classifier
type Classification struct {
	CurrencyCode      string  `json:"currency_code"`
	Confidence        float64 `json:"confidence"`
	NameEn            string  `json:"name_en"`
	NameAr            string  `json:"name_ar"`
	DenominationValue int     `json:"denomination_value"`
	IsCounterfeit     bool    `json:"is_counterfeit"`
}

// QualityFlags reports data-quality signals without rejecting the classification.
// Confidence is expected in [0,1]; denominations are only checked for currencies
// listed in KnownDenominations.
func (c Classification) QualityFlags() []string {
	var flags []string

	if c.Confidence < 0 || c.Confidence > 1 {
		flags = append(flags, FlagConfidenceOutOfRange)
	}

	if known, ok := KnownDenominations[c.CurrencyCode]; ok {
		found := false
		for _, v := range known {
			if v == c.DenominationValue {
				found = true
				break
			}
		}
		if !found {
			flags = append(flags, FlagUnknownDenomination)
		}
	}

	return flags
}
