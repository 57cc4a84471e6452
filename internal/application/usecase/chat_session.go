package usecase

import (
	"context"
	"strings"

	"github.com/finteach/finteach-cli/internal/domain/entity"
	"github.com/finteach/finteach-cli/internal/domain/repository"
	"github.com/finteach/finteach-cli/internal/logger"
)

const (
	// ChatGreeting seeds every new transcript.
	ChatGreeting = "Hello! I am your Financial Advisor AI. How can I help you today?"

	// chatFallbackReply is shown when the chat call fails outright, so
	// the transcript never stalls silently.
	chatFallbackReply = "Sorry, I couldn't process your request. Please try again."

	// chatEmptyReply covers a successful call with an empty reply body.
	chatEmptyReply = "I'm here to help with financial topics. Please ask a finance-related question!"
)

// Transcript width bounds for rendering. The terminal replaces the web
// widget's drag-resize with a configurable wrap width.
const (
	MinChatWidth     = 40
	DefaultChatWidth = 80
)

// ClampChatWidth applies the default and the minimum bound.
func ClampChatWidth(width int) int {
	if width == 0 {
		return DefaultChatWidth
	}
	if width < MinChatWidth {
		return MinChatWidth
	}
	return width
}

// ChatSession holds one advisor conversation: an append-only transcript
// that starts with the greeting and is never persisted.
type ChatSession struct {
	apiRepo     repository.APIRepository
	accessToken string
	transcript  []entity.ChatMessage
	loading     bool
}

// NewChatSession starts a transcript seeded with the advisor greeting.
// The access token must already have passed the session guard.
func NewChatSession(apiRepo repository.APIRepository, accessToken string) *ChatSession {
	return &ChatSession{
		apiRepo:     apiRepo,
		accessToken: accessToken,
		transcript: []entity.ChatMessage{
			{Sender: entity.ChatSenderAI, Text: ChatGreeting},
		},
	}
}

// Transcript returns the messages so far, oldest first.
func (s *ChatSession) Transcript() []entity.ChatMessage {
	return s.transcript
}

// Loading reports whether a reply is pending.
func (s *ChatSession) Loading() bool {
	return s.loading
}

// Send submits one user message. Empty input (after trimming) is ignored
// and reported as not sent. The user message is appended immediately;
// exactly one AI message follows once the call settles, using the
// fallback text when the call fails. Errors are never surfaced beyond
// diagnostics, per the widget contract.
func (s *ChatSession) Send(ctx context.Context, text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	s.transcript = append(s.transcript, entity.ChatMessage{Sender: entity.ChatSenderUser, Text: trimmed})
	s.loading = true

	reply, err := s.apiRepo.SendChatMessage(ctx, s.accessToken, trimmed)
	if err != nil {
		logger.Get().Debugw("chat request failed", "error", err)
		reply = chatFallbackReply
	} else if reply == "" {
		reply = chatEmptyReply
	}

	s.transcript = append(s.transcript, entity.ChatMessage{Sender: entity.ChatSenderAI, Text: reply})
	s.loading = false
	return true
}
