package model

import "time"

type ChatSender string

const (
	SenderUser      ChatSender = "user"
	SenderAssistant ChatSender = "assistant"
)

// ChatMessage is one turn in the assistant conversation.
type ChatMessage struct {
	ID        string     `json:"id"`
	Content   string     `json:"content"`
	Sender    ChatSender `json:"sender"`
	Timestamp time.Time  `json:"timestamp"`
}
