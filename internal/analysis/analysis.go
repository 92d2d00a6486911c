// Package analysis turns free text into a mood label through a chat model.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/julianstephens/orbit/internal/constants"
	apperrors "github.com/julianstephens/orbit/internal/errors"
	"github.com/julianstephens/orbit/internal/logger"
	"github.com/julianstephens/orbit/internal/models"
)

// Result is what the analyzer hands back for one piece of text.
type Result struct {
	PrimaryMood string
	Confidence  float64
	Emoji       string
	Insight     string
}

// Analyzer produces a mood from free text. Implementations return errors
// wrapping ErrAnalysisUnavailable and never retry.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (Result, error)
}

// Config configures the OpenAI-compatible analyzer.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type OpenAIAnalyzer struct {
	client *openai.Client
	model  string
}

// NewOpenAIAnalyzer builds an analyzer. An empty API key is an error so the
// caller can fall back to manual mood logging.
func NewOpenAIAnalyzer(cfg Config) (*OpenAIAnalyzer, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("%w: no API key configured", apperrors.ErrAnalysisUnavailable)
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = constants.DefaultAnalysisTime
	}
	config.HTTPClient = &http.Client{Timeout: timeout}

	model := cfg.Model
	if model == "" {
		model = constants.DefaultOpenAIModel
	}

	return &OpenAIAnalyzer{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}, nil
}

func systemPrompt() string {
	return fmt.Sprintf(`You are a supportive wellness companion. Read the user's message and classify their mood.
Reply with a JSON object only: {"primaryMood": string, "confidence": number, "emoji": string, "insight": string}.
primaryMood must be one of: %s.
confidence is between 0 and 1. insight is one short, kind sentence.`, strings.Join(models.MoodLabels(), ", "))
}

type reply struct {
	PrimaryMood string  `json:"primaryMood"`
	Confidence  float64 `json:"confidence"`
	Emoji       string  `json:"emoji"`
	Insight     string  `json:"insight"`
}

func (a *OpenAIAnalyzer) Analyze(ctx context.Context, text string) (Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}, fmt.Errorf("%w: nothing to analyze", apperrors.ErrAnalysisUnavailable)
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0.2,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		logger.Warn("Mood analysis request failed", "model", a.model, "error", err)
		return Result{}, fmt.Errorf("%w: %v", apperrors.ErrAnalysisUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return Result{}, fmt.Errorf("%w: empty response", apperrors.ErrAnalysisUnavailable)
	}

	return ParseReply(resp.Choices[0].Message.Content)
}

// ParseReply decodes a model reply into a Result. Unknown labels become
// Mixed, confidence is clamped into [0,1] and a missing emoji is filled from
// the category.
func ParseReply(content string) (Result, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var r reply
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &r); err != nil {
		return Result{}, fmt.Errorf("%w: unreadable reply: %v", apperrors.ErrAnalysisUnavailable, err)
	}

	label, ok := models.CanonicalMood(r.PrimaryMood)
	if !ok {
		logger.Debug("Unknown mood label from analyzer", "label", r.PrimaryMood)
		label = models.MoodMixed
	}

	confidence := r.Confidence
	switch {
	case math.IsNaN(confidence) || confidence < 0:
		confidence = 0
	case confidence > 1:
		confidence = 1
	}

	emoji := strings.TrimSpace(r.Emoji)
	if emoji == "" {
		emoji = models.MoodEmoji(label)
	}

	return Result{
		PrimaryMood: label,
		Confidence:  confidence,
		Emoji:       emoji,
		Insight:     strings.TrimSpace(r.Insight),
	}, nil
}
