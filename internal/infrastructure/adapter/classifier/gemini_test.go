package classifier

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/currency-detector/internal/domain/error"
	"github.com/amirhossein-jamali/currency-detector/internal/infrastructure/adapter/logger"
)

type fakeGenerator struct {
	parts []genai.Part
	resp  *genai.GenerateContentResponse
	err   error
	calls int
}

func (f *fakeGenerator) GenerateContent(_ context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.parts = parts
	return f.resp, f.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text(text)}}},
		},
	}
}

func pngImage(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newTestClassifier(gen contentGenerator) *GeminiClassifier {
	return &GeminiClassifier{model: gen, name: DefaultGeminiModel, logger: logger.NewNoopLogger()}
}

func TestGeminiClassifier_Classify(t *testing.T) {
	ctx := context.Background()

	t.Run("Sends prompt and JPEG and returns first text", func(t *testing.T) {
		gen := &fakeGenerator{resp: textResponse(dollarJSON)}

		got, err := newTestClassifier(gen).Classify(ctx, pngImage(t))

		require.NoError(t, err)
		assert.Equal(t, dollarJSON, got)
		require.Len(t, gen.parts, 2)
		assert.Equal(t, genai.Text(banknotePrompt), gen.parts[0])
		blob, ok := gen.parts[1].(*genai.Blob)
		require.True(t, ok)
		assert.Equal(t, "image/jpeg", blob.MIMEType)
		assert.Equal(t, "image/jpeg", http.DetectContentType(blob.Data))
	})

	t.Run("Call failure is not retried", func(t *testing.T) {
		gen := &fakeGenerator{err: errors.New("googleapi: Error 429: quota")}

		_, err := newTestClassifier(gen).Classify(ctx, pngImage(t))

		assert.ErrorIs(t, err, errs.ErrExternalCallFailure)
		assert.Equal(t, 1, gen.calls)
	})

	t.Run("Empty answer", func(t *testing.T) {
		gen := &fakeGenerator{resp: &genai.GenerateContentResponse{}}

		_, err := newTestClassifier(gen).Classify(ctx, pngImage(t))

		assert.ErrorIs(t, err, errs.ErrExternalCallFailure)
	})

	t.Run("Undecodable image never reaches the API", func(t *testing.T) {
		gen := &fakeGenerator{resp: textResponse("{}")}

		_, err := newTestClassifier(gen).Classify(ctx, []byte("not an image"))

		assert.True(t, errs.IsExternalCallError(err))
		assert.Equal(t, 0, gen.calls)
	})
}

func TestToJPEG_PassesJPEGThrough(t *testing.T) {
	first, err := toJPEG(pngImage(t))
	require.NoError(t, err)

	second, err := toJPEG(first)

	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFirstText(t *testing.T) {
	assert.Equal(t, "", firstText(nil))
	assert.Equal(t, "", firstText(&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}))
	assert.Equal(t, "hi", firstText(textResponse("hi")))
}

func TestNewGeminiClassifier_RequiresKey(t *testing.T) {
	_, err := NewGeminiClassifier(context.Background(), " ", "", logger.NewNoopLogger())
	assert.Error(t, err)
}
