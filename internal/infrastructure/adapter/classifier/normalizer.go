package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/amirhossein-jamali/currency-detector/internal/domain/entity"
	errs "github.com/amirhossein-jamali/currency-detector/internal/domain/error"
	"github.com/amirhossein-jamali/currency-detector/internal/domain/port/external"
)

const fence = "```"

// Required keys of the classifier answer, in the order they are checked
const (
	KeyCurrencyCode      = "currency_code"
	KeyConfidence        = "confidence"
	KeyNameEn            = "name_en"
	KeyNameAr            = "name_ar"
	KeyDenominationValue = "denomination_value"
	KeyIsCounterfeit     = "is_counterfeit"
)

// RequiredKeys lists every key a classifier answer must carry
var RequiredKeys = []string{
	KeyCurrencyCode,
	KeyConfidence,
	KeyNameEn,
	KeyNameAr,
	KeyDenominationValue,
	KeyIsCounterfeit,
}

var (
	errNull       = errors.New("value is null")
	errNotScalar  = errors.New("value is not a scalar")
	errNotNumber  = errors.New("value is not a number")
	errNotInteger = errors.New("value is not an integer")
	errNotBool    = errors.New("value is not a boolean")
	errNotFinite  = errors.New("value is not finite")
	errOutOfRange = errors.New("value is out of range")
)

// JSONNormalizer turns the classifier's free text into an entity.Classification
type JSONNormalizer struct{}

var _ external.ResponseNormalizer = JSONNormalizer{}

// NewJSONNormalizer creates a new normalizer
func NewJSONNormalizer() JSONNormalizer {
	return JSONNormalizer{}
}

// Normalize strips optional markdown fences, decodes the JSON object and
// coerces the six required fields.
func (JSONNormalizer) Normalize(raw string) (entity.Classification, error) {
	text := StripFences(raw)

	parsed, err := decodeObject(text)
	if err != nil {
		return entity.Classification{}, &errs.MalformedResponseError{Raw: raw, Err: err}
	}

	for _, key := range RequiredKeys {
		if _, ok := parsed[key]; !ok {
			return entity.Classification{}, &errs.MissingFieldError{Field: key, Raw: raw}
		}
	}

	var c entity.Classification
	mismatch := func(field string, err error) error {
		return &errs.TypeMismatchError{Field: field, Parsed: parsed, Err: err}
	}

	code, err := asString(parsed[KeyCurrencyCode])
	if err != nil {
		return entity.Classification{}, mismatch(KeyCurrencyCode, err)
	}
	c.CurrencyCode = strings.ToUpper(code)

	if c.Confidence, err = asFloat(parsed[KeyConfidence]); err != nil {
		return entity.Classification{}, mismatch(KeyConfidence, err)
	}
	if c.NameEn, err = asString(parsed[KeyNameEn]); err != nil {
		return entity.Classification{}, mismatch(KeyNameEn, err)
	}
	if c.NameAr, err = asString(parsed[KeyNameAr]); err != nil {
		return entity.Classification{}, mismatch(KeyNameAr, err)
	}
	if c.DenominationValue, err = asInt(parsed[KeyDenominationValue]); err != nil {
		return entity.Classification{}, mismatch(KeyDenominationValue, err)
	}
	if c.IsCounterfeit, err = asBool(parsed[KeyIsCounterfeit]); err != nil {
		return entity.Classification{}, mismatch(KeyIsCounterfeit, err)
	}

	return c, nil
}

// StripFences trims the text and removes a surrounding markdown code fence.
// The opening line is dropped when it starts with the fence (so ```json works),
// the closing line only when it is exactly the fence.
func StripFences(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, fence) {
		return text
	}

	lines := strings.Split(text, "\n")
	if strings.HasPrefix(lines[0], fence) {
		lines = lines[1:]
	}
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == fence {
		lines = lines[:len(lines)-1]
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func decodeObject(text string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var parsed map[string]any
	if err := dec.Decode(&parsed); err != nil {
		return nil, err
	}
	if parsed == nil {
		return nil, errors.New("top-level value is not an object")
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, errors.New("unexpected data after the JSON object")
	}
	return parsed, nil
}

func asString(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", errNull
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return "", errNotScalar
	}
}

func asFloat(v any) (float64, error) {
	var (
		f   float64
		err error
	)
	switch t := v.(type) {
	case nil:
		return 0, errNull
	case json.Number:
		f, err = t.Float64()
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(t), 64)
	default:
		return 0, errNotNumber
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errNotNumber, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotFinite
	}
	return f, nil
}

func asInt(v any) (int, error) {
	switch t := v.(type) {
	case nil:
		return 0, errNull
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return int32Range(float64(i))
		}
		f, err := t.Float64()
		if err != nil || math.IsInf(f, 0) {
			return 0, errNotInteger
		}
		return int32Range(math.Trunc(f))
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", errNotInteger, err)
		}
		return int32Range(float64(i))
	default:
		return 0, errNotInteger
	}
}

// int32Range rejects denominations outside the 32-bit integer range
func int32Range(f float64) (int, error) {
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, errOutOfRange
	}
	return int(f), nil
}

func asBool(v any) (bool, error) {
	switch t := v.(type) {
	case nil:
		return false, errNull
	case bool:
		return t, nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return false, errNotBool
		}
		return f != 0, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return false, errNotBool
	default:
		return false, errNotBool
	}
}
