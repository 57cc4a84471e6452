package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/finteach/finteach-cli/internal/domain/entity"
)

func TestChatSessionStartsWithGreeting(t *testing.T) {
	t.Parallel()

	session := NewChatSession(&fakeAPI{}, "token")

	transcript := session.Transcript()
	if len(transcript) != 1 {
		t.Fatalf("expected greeting only, got %d messages", len(transcript))
	}
	if transcript[0].Sender != entity.ChatSenderAI || transcript[0].Text != ChatGreeting {
		t.Fatalf("unexpected greeting message: %+v", transcript[0])
	}
}

func TestChatSessionSendAppendsExactlyOneReply(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{chatFn: func(message string) (string, error) {
		return "Try saving 20% of your income each month.", nil
	}}
	session := NewChatSession(api, "token")

	if !session.Send(context.Background(), "  how do I save?  ") {
		t.Fatal("expected Send to report the message as sent")
	}

	transcript := session.Transcript()
	if len(transcript) != 3 {
		t.Fatalf("expected greeting + user + reply, got %d messages", len(transcript))
	}
	if transcript[1].Sender != entity.ChatSenderUser || transcript[1].Text != "how do I save?" {
		t.Fatalf("unexpected user message: %+v", transcript[1])
	}
	if transcript[2].Sender != entity.ChatSenderAI {
		t.Fatalf("expected an AI reply, got %+v", transcript[2])
	}
	if session.Loading() {
		t.Fatal("expected loading to clear after the reply")
	}
}

func TestChatSessionFallbackOnError(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{chatFn: func(message string) (string, error) {
		return "", errors.New("boom")
	}}
	session := NewChatSession(api, "token")

	session.Send(context.Background(), "hello")

	transcript := session.Transcript()
	last := transcript[len(transcript)-1]
	if last.Sender != entity.ChatSenderAI || last.Text != chatFallbackReply {
		t.Fatalf("expected fallback reply, got %+v", last)
	}
	if len(transcript) != 3 {
		t.Fatalf("expected exactly one AI reply even on failure, got %d messages", len(transcript))
	}
}

func TestChatSessionEmptyReplyBecomesHint(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{chatFn: func(message string) (string, error) {
		return "", nil
	}}
	session := NewChatSession(api, "token")

	session.Send(context.Background(), "what is the weather")

	transcript := session.Transcript()
	last := transcript[len(transcript)-1]
	if last.Text != chatEmptyReply {
		t.Fatalf("expected the finance hint for an empty reply, got %q", last.Text)
	}
}

func TestChatSessionIgnoresBlankInput(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	session := NewChatSession(api, "token")

	if session.Send(context.Background(), "   ") {
		t.Fatal("expected blank input to be ignored")
	}
	if api.calls != 0 {
		t.Fatalf("expected no request for blank input, got %d", api.calls)
	}
	if len(session.Transcript()) != 1 {
		t.Fatal("expected transcript to stay greeting-only")
	}
}

func TestClampChatWidth(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		width int
		want  int
	}{
		{"zero falls back to default", 0, DefaultChatWidth},
		{"below minimum clamps", 12, MinChatWidth},
		{"minimum passes through", MinChatWidth, MinChatWidth},
		{"wide passes through", 120, 120},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampChatWidth(tc.width); got != tc.want {
				t.Fatalf("ClampChatWidth(%d) = %d, want %d", tc.width, got, tc.want)
			}
		})
	}
}
