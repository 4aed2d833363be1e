package classifier

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	errs "github.com/amirhossein-jamali/currency-detector/internal/domain/error"
	"github.com/amirhossein-jamali/currency-detector/internal/domain/port/core"
	"github.com/amirhossein-jamali/currency-detector/internal/domain/port/external"
)

const providerGemini = "gemini"

// DefaultGeminiModel is used when no model is configured
const DefaultGeminiModel = "gemini-2.5-flash"

// contentGenerator is the part of *genai.GenerativeModel the classifier needs
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiClassifier asks a Gemini vision model to describe a banknote image
type GeminiClassifier struct {
	client *genai.Client
	model  contentGenerator
	name   string
	logger core.Logger
}

var _ external.BanknoteClassifier = (*GeminiClassifier)(nil)

// NewGeminiClassifier creates a Gemini client bound to one model.
// The client is shared by all requests and must be closed on shutdown.
func NewGeminiClassifier(ctx context.Context, apiKey, model string, logger core.Logger) (*GeminiClassifier, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini api key is empty")
	}
	model = strings.TrimSpace(model)
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	m := client.GenerativeModel(model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature: ptrFloat32(0),
	}

	logger.Info("Gemini classifier initialized", map[string]any{
		"model": model,
	})

	return &GeminiClassifier{
		client: client,
		model:  m,
		name:   model,
		logger: logger,
	}, nil
}

// Name identifies the provider in logs
func (g *GeminiClassifier) Name() string {
	return providerGemini
}

// Classify sends the image with the fixed prompt and returns the first text part
// of the answer. It makes exactly one attempt.
func (g *GeminiClassifier) Classify(ctx context.Context, image []byte) (string, error) {
	jpegBytes, err := toJPEG(image)
	if err != nil {
		return "", errs.NewExternalCallError(providerGemini, err)
	}

	resp, err := g.model.GenerateContent(ctx,
		genai.Text(banknotePrompt),
		&genai.Blob{MIMEType: jpegMIME, Data: jpegBytes},
	)
	if err != nil {
		return "", errs.NewExternalCallError(providerGemini, err)
	}

	text := firstText(resp)
	if strings.TrimSpace(text) == "" {
		return "", errs.NewExternalCallError(providerGemini, errors.New("empty response"))
	}

	g.logger.Debug("Gemini answered", map[string]any{
		"model":  g.name,
		"length": len(text),
	})

	return text, nil
}

// Close releases the underlying client
func (g *GeminiClassifier) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
