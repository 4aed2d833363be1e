package external

import (
	"context"

	"github.com/amirhossein-jamali/currency-detector/internal/domain/entity"
)

// BanknoteClassifier sends a banknote image to the external vision model and
// returns its free-text answer unmodified.
//
// Possible errors:
// - ErrExternalCallFailure: network, quota or empty-response failures
type BanknoteClassifier interface {
	Classify(ctx context.Context, image []byte) (string, error)
	// Name identifies the provider in logs
	Name() string
}

// ResponseNormalizer turns the classifier's free text into a fixed-shape record.
//
// Possible errors (all match ErrMalformedExternalResponse):
// - *MalformedResponseError, *MissingFieldError, *TypeMismatchError
type ResponseNormalizer interface {
	Normalize(raw string) (entity.Classification, error)
}
