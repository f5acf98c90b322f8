package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lshigami/Careerly/config"
	"github.com/rs/zerolog/log"
	googlegenai "google.golang.org/genai"
)

// genAIService is the google.golang.org/genai backend, selected with
// AI_CLIENT=genai.
type genAIService struct {
	client *googlegenai.Client
	model  string
}

func NewGenAIService(cfg *config.Config) (TextGenerator, error) {
	if cfg.Gemini.ApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Assessment generation will be non-functional.")
		return &genAIService{model: cfg.Gemini.Model}, nil
	}
	client, err := googlegenai.NewClient(context.Background(), &googlegenai.ClientConfig{
		APIKey:  cfg.Gemini.ApiKey,
		Backend: googlegenai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize genai client: %w", err)
	}
	return &genAIService{client: client, model: cfg.Gemini.Model}, nil
}

func (s *genAIService) GenerateText(ctx context.Context, prompt string) (string, error) {
	if s.client == nil {
		return "", &GenerationError{Kind: KindMisconfigured, Err: errMissingAPIKey}
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, googlegenai.Text(prompt), nil)
	if err != nil {
		return "", &GenerationError{Kind: classifyGenAIError(err), Err: err}
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", &GenerationError{Kind: KindUnknown, Err: errors.New("genai returned no text content")}
	}
	return text, nil
}

func classifyGenAIError(err error) GenerationErrorKind {
	var apiErr googlegenai.APIError
	if errors.As(err, &apiErr) {
		return classifyGenAIStatus(apiErr.Code, apiErr.Status, apiErr.Message)
	}
	var apiErrPtr *googlegenai.APIError
	if errors.As(err, &apiErrPtr) {
		return classifyGenAIStatus(apiErrPtr.Code, apiErrPtr.Status, apiErrPtr.Message)
	}
	return kindFromMessage(err.Error())
}

func classifyGenAIStatus(code int, status, message string) GenerationErrorKind {
	if kind := kindForHTTPStatus(code); kind != KindUnknown {
		return kind
	}
	switch status {
	case "UNAVAILABLE":
		return KindOverloaded
	case "UNAUTHENTICATED", "PERMISSION_DENIED":
		return KindMisconfigured
	}
	return kindFromMessage(message)
}
