package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4o-mini"
	temperature    = 0.7
	maxTokens      = 400
)

// ErrEmptyCompletion is returned when the endpoint answers without content.
var ErrEmptyCompletion = errors.New("empty completion")

// StatusError is returned when the endpoint answers with a non-success status.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("chat completion error: status=%d, message=%s", e.Code, e.Message)
}

// StatusCode returns the HTTP status of the failed call.
func (e *StatusError) StatusCode() int { return e.Code }

// Client is an OpenAI-compatible chat completion endpoint.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Config holds the endpoint, credentials and model of a chat completion API.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
	model      string
}

// NewClient builds a chat completion client. Empty fields fall back to the
// public OpenAI endpoint and gpt-4o-mini.
func NewClient(cfg Config) *APIClient {
	base := strings.TrimSuffix(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(base).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	return &APIClient{httpClient: httpClient, model: model}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete sends one system instruction and one user message and returns the
// trimmed text of the first choice.
func (c *APIClient) Complete(ctx context.Context, system, user string) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	result := new(chatResponse)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(reqBody).
		SetResult(result).
		SetError(apiErr).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat completion call: %w", err)
	}
	if resp.IsError() {
		return "", &StatusError{Code: resp.StatusCode(), Message: apiErr.Error.Message}
	}

	if len(result.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	content := strings.TrimSpace(result.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyCompletion
	}
	return content, nil
}
