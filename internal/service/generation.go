package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lshigami/Careerly/config"
	"github.com/rs/zerolog/log"
)

// TextGenerator turns a prompt into raw model output.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type GenerationErrorKind int

const (
	KindUnknown GenerationErrorKind = iota
	KindOverloaded
	KindMisconfigured
)

func (k GenerationErrorKind) String() string {
	switch k {
	case KindOverloaded:
		return "overloaded"
	case KindMisconfigured:
		return "misconfigured"
	default:
		return "unknown"
	}
}

// GenerationError is how backends report a classified SDK failure.
type GenerationError struct {
	Kind GenerationErrorKind
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation %s: %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// KindOf returns the classification carried by err, or KindUnknown.
func KindOf(err error) GenerationErrorKind {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Kind
	}
	return KindUnknown
}

// Sleeper waits for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RetryingGenerator calls a backend sequentially until it succeeds or the
// policy gives up, and maps the final failure onto the service errors.
type RetryingGenerator struct {
	backend TextGenerator
	policy  RetryPolicy
	sleep   Sleeper
}

func NewRetryingGenerator(backend TextGenerator, policy RetryPolicy, sleep Sleeper) *RetryingGenerator {
	if sleep == nil {
		sleep = sleepContext
	}
	return &RetryingGenerator{backend: backend, policy: policy, sleep: sleep}
}

func (g *RetryingGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	for attempt := 1; ; attempt++ {
		text, err := g.backend.GenerateText(ctx, prompt)
		if err == nil {
			if attempt > 1 {
				log.Info().Int("attempt", attempt).Msg("Generation succeeded after retry")
			}
			return text, nil
		}

		kind := KindOf(err)
		decision := g.policy.Decide(attempt, kind)
		if !decision.Retry {
			log.Error().Err(err).Int("attempt", attempt).Str("kind", kind.String()).Msg("Generation failed, giving up")
			return "", mapGenerationError(kind, err)
		}

		log.Warn().Err(err).Int("attempt", attempt).Dur("backoff", decision.Delay).Msg("Generation service overloaded, retrying")
		if sleepErr := g.sleep(ctx, decision.Delay); sleepErr != nil {
			return "", fmt.Errorf("%w: %w", ErrGenerationFailed, sleepErr)
		}
	}
}

func mapGenerationError(kind GenerationErrorKind, err error) error {
	switch kind {
	case KindOverloaded:
		return fmt.Errorf("%w: %w", ErrServiceOverloaded, err)
	case KindMisconfigured:
		return fmt.Errorf("%w: %w", ErrServiceMisconfigured, err)
	default:
		return fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
}

// NewTextGenerator builds the configured Gemini backend wrapped in the
// default retry policy.
func NewTextGenerator(cfg *config.Config) (TextGenerator, error) {
	var (
		backend TextGenerator
		err     error
	)
	switch cfg.Gemini.Client {
	case config.ClientGenAI:
		backend, err = NewGenAIService(cfg)
	case config.ClientGenerativeAI, "":
		backend, err = NewGeminiLLMService(cfg)
	default:
		return nil, fmt.Errorf("unsupported AI_CLIENT %q", cfg.Gemini.Client)
	}
	if err != nil {
		return nil, err
	}
	return NewRetryingGenerator(backend, DefaultRetryPolicy(), nil), nil
}
