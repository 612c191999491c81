// Package advisor answers farming questions and drafts monthly calendars
// through a chat completion backend.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/olupoagric/storefront/internal/domain/models"
	"github.com/olupoagric/storefront/internal/textclean"
	"github.com/olupoagric/storefront/pkg/clients/anthropic"
	"github.com/olupoagric/storefront/pkg/clients/openai"
)

var (
	ErrEmptyQuestion = errors.New("advisor: question is empty")
	ErrInvalidMonth  = errors.New("advisor: month must be between 1 and 12")
)

const systemPrompt = "You are an expert Nigerian agricultural extension officer. " +
	"Give clear, practical, and safe advice for small to medium scale farmers. " +
	"Focus on Nigerian climate (rainy and dry season), common crops (maize, rice, cassava, yam, vegetables), " +
	"and simple steps farmers can follow. Keep answers concise and easy to understand. " +
	"IMPORTANT: Do NOT use any markdown formatting like #, ##, **, *, or code blocks. Use plain text only."

// User-visible texts.
const (
	NotConfiguredMessage = "AI assistant is not fully configured yet.\n\n" +
		"To enable real answers, set your API key in the environment as:\n" +
		"AI_API_KEY=your_key_here\n\n" +
		"In the meantime, here is some general guidance:\n" +
		"Ask about specific crops (maize, rice, cassava, vegetables), planting time, " +
		"fertilizer use, and pest control for Nigerian conditions."
	UnreachableMessage    = "I could not reach the AI service at the moment. Please try again later."
	EmptyAnswerMessage    = "I could not generate a response. Please try asking in a different way."
	NetworkMessage        = "Network error while contacting the AI service. Please check your internet connection and try again."
	CalendarFailedMessage = "Unable to generate the farming calendar right now. Please try again."
)

// Completer sends one system instruction and one user message to a model.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Answer is cleaned model output. Configured is false for the canned text.
type Answer struct {
	Text       string `json:"text"`
	Configured bool   `json:"configured"`
}

// UnavailableError carries the message to show when the backend call failed.
type UnavailableError struct {
	Message string
	Err     error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("advisor unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// Service wraps a Completer. A nil completer puts it in degraded mode.
type Service struct {
	completer Completer
	logger    *zap.Logger
}

// NewService builds a Service. Pass a nil completer when no API key is set.
func NewService(completer Completer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{completer: completer, logger: logger}
}

// Degraded reports whether answers are canned.
func (s *Service) Degraded() bool {
	return s.completer == nil
}

// Ask answers a free-form question.
func (s *Service) Ask(ctx context.Context, question string) (Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return Answer{}, ErrEmptyQuestion
	}
	return s.complete(ctx, question, "")
}

// MonthlyCalendar drafts the activity list for a month.
func (s *Service) MonthlyCalendar(ctx context.Context, month int) (Answer, error) {
	if !models.ValidMonth(month) {
		return Answer{}, ErrInvalidMonth
	}
	return s.complete(ctx, CalendarPrompt(month), CalendarFailedMessage)
}

// CalendarPrompt is the user message sent for a monthly calendar.
func CalendarPrompt(month int) string {
	name := models.MonthName(month)
	return "You are an expert Nigerian agricultural extension officer.\n" +
		"For " + name + " in Nigeria, give a clear farming calendar in bullet points.\n" +
		"Group activities by major crop categories (e.g. Maize, Rice, Cassava, Vegetables, Livestock, Poultry).\n" +
		"For each category, list 3–6 key activities farmers should do in " + name + "\n" +
		"(land preparation, planting, weeding, fertiliser, pest control, harvesting, storage, etc.).\n" +
		"Keep it concise and practical, using simple language.\n" +
		"IMPORTANT: Do NOT use any markdown formatting like #, ##, **, or *. Use plain text only."
}

// complete runs the call. When failure is non-empty it replaces the mapped
// message for every kind of error.
func (s *Service) complete(ctx context.Context, prompt, failure string) (Answer, error) {
	if s.completer == nil {
		return Answer{Text: NotConfiguredMessage}, nil
	}

	text, err := s.completer.Complete(ctx, systemPrompt, prompt)
	if err == nil && strings.TrimSpace(text) == "" {
		err = openai.ErrEmptyCompletion
	}
	if err != nil {
		s.logger.Warn("completion failed", zap.Error(err))
		msg := failure
		if msg == "" {
			msg = messageFor(err)
		}
		return Answer{}, &UnavailableError{Message: msg, Err: err}
	}

	return Answer{Text: textclean.Clean(text), Configured: true}, nil
}

func messageFor(err error) string {
	var status interface{ StatusCode() int }
	switch {
	case errors.Is(err, openai.ErrEmptyCompletion), errors.Is(err, anthropic.ErrEmptyResponse):
		return EmptyAnswerMessage
	case errors.As(err, &status):
		return UnreachableMessage
	default:
		return NetworkMessage
	}
}
