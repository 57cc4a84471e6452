package entity

const (
	ChatSenderUser = "user"
	ChatSenderAI   = "ai"
)

// ChatMessage is one entry in the advisor transcript. The transcript is
// append-only and never persisted; it resets with each chat session.
type ChatMessage struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}
