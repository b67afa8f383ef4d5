package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GeminiService is the completion gateway. The model is configured once at
// startup with a fixed decoding configuration and safety policy; every
// request makes a single round trip with no retries.
type GeminiService struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
	timeout   time.Duration
	rateChan  chan struct{} // Token bucket
}

func NewGeminiService(apiKey, modelName string, timeout time.Duration, concurrentReqs int) (*GeminiService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.7)
	model.SetTopP(0.9)
	model.SetTopK(40)
	model.SetMaxOutputTokens(500)
	model.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockMediumAndAbove},
	}

	// Token bucket bounding concurrent upstream calls
	rateChan := make(chan struct{}, concurrentReqs)
	for i := 0; i < concurrentReqs; i++ {
		rateChan <- struct{}{}
	}

	return &GeminiService{
		client:    client,
		model:     model,
		modelName: modelName,
		timeout:   timeout,
		rateChan:  rateChan,
	}, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

// Model returns the configured engine-model identifier.
func (s *GeminiService) Model() string {
	return s.modelName
}

// acquireRate blocks until a rate slot is available or ctx ends.
func (s *GeminiService) acquireRate(ctx context.Context) error {
	select {
	case <-s.rateChan:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *GeminiService) releaseRate() {
	s.rateChan <- struct{}{}
}

// Generate sends the prompt to Gemini and returns the generated text
// verbatim. The call is bounded by the service timeout and cancelled when
// the caller's context ends. Any failure comes back as a *GenerationError.
func (s *GeminiService) Generate(ctx context.Context, prompt string) (string, error) {
	if err := s.acquireRate(ctx); err != nil {
		return "", classifyError(err)
	}
	defer s.releaseRate()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", classifyError(err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
		return "", &GenerationError{
			Kind: GenerationSafetyBlocked,
			Err:  fmt.Errorf("prompt blocked: %s", resp.PromptFeedback.BlockReason),
		}
	}
	for _, cand := range resp.Candidates {
		if cand.FinishReason == genai.FinishReasonSafety {
			return "", &GenerationError{
				Kind: GenerationSafetyBlocked,
				Err:  fmt.Errorf("candidate blocked: %s", cand.FinishReason),
			}
		}
	}

	text := extractText(resp)
	if strings.TrimSpace(text) == "" {
		return "", &GenerationError{
			Kind: GenerationMalformed,
			Err:  errors.New("empty response text"),
		}
	}

	return text, nil
}

func classifyError(err error) *GenerationError {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &GenerationError{Kind: GenerationTimeout, Err: err}
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests:
			return &GenerationError{Kind: GenerationRateLimited, Err: err}
		case http.StatusBadRequest:
			return &GenerationError{Kind: GenerationMalformed, Err: err}
		}
	}

	return &GenerationError{Kind: GenerationNetworkError, Err: err}
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
