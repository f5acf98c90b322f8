package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/googleapis/gax-go/v2/apierror"
	"github.com/lshigami/Careerly/config"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errMissingAPIKey = errors.New("GEMINI_API_KEY is not set")

type geminiLLMService struct {
	model *genai.GenerativeModel
	cfg   *config.Config
}

// NewGeminiLLMService builds the generative-ai-go backend. A missing API key
// does not fail start-up; every call then reports a misconfiguration.
func NewGeminiLLMService(cfg *config.Config) (TextGenerator, error) {
	if cfg.Gemini.ApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Assessment generation will be non-functional.")
		return &geminiLLMService{cfg: cfg}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Gemini.ApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &geminiLLMService{model: client.GenerativeModel(cfg.Gemini.Model), cfg: cfg}, nil
}

func (s *geminiLLMService) GenerateText(ctx context.Context, prompt string) (string, error) {
	if s.model == nil {
		return "", &GenerationError{Kind: KindMisconfigured, Err: errMissingAPIKey}
	}

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &GenerationError{Kind: classifyGoogleAPIError(err), Err: err}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Str("model", s.cfg.Gemini.Model).Msg("Gemini returned no candidates or parts in response.")
		return "", &GenerationError{Kind: KindUnknown, Err: errors.New("gemini returned no content")}
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	if b.Len() == 0 {
		return "", &GenerationError{Kind: KindUnknown, Err: errors.New("gemini returned no text content")}
	}
	return strings.TrimSpace(b.String()), nil
}

// classifyGoogleAPIError inspects the error shapes the Google client
// libraries produce (gax APIError, googleapi.Error, gRPC status).
func classifyGoogleAPIError(err error) GenerationErrorKind {
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		if kind := kindForHTTPStatus(apiErr.HTTPCode()); kind != KindUnknown {
			return kind
		}
		if strings.HasPrefix(apiErr.Reason(), "API_KEY") {
			return KindMisconfigured
		}
		if st := apiErr.GRPCStatus(); st != nil {
			if kind := kindForGRPCCode(st.Code()); kind != KindUnknown {
				return kind
			}
		}
	}

	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		if kind := kindForHTTPStatus(gErr.Code); kind != KindUnknown {
			return kind
		}
	}

	if st, ok := status.FromError(err); ok {
		if kind := kindForGRPCCode(st.Code()); kind != KindUnknown {
			return kind
		}
	}

	return kindFromMessage(err.Error())
}

func kindForHTTPStatus(code int) GenerationErrorKind {
	switch code {
	case http.StatusServiceUnavailable:
		return KindOverloaded
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindMisconfigured
	}
	return KindUnknown
}

func kindForGRPCCode(code codes.Code) GenerationErrorKind {
	switch code {
	case codes.Unavailable:
		return KindOverloaded
	case codes.Unauthenticated, codes.PermissionDenied:
		return KindMisconfigured
	}
	return KindUnknown
}

func kindFromMessage(msg string) GenerationErrorKind {
	if strings.Contains(msg, "API_KEY") || strings.Contains(msg, "API key") {
		return KindMisconfigured
	}
	return KindUnknown
}
