package models

import "time"

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationMessage is one entry of the locally persisted chat log.
type ConversationMessage struct {
	ID        string        `json:"id"`
	Role      Role          `json:"role"`
	Text      string        `json:"text"`
	Products  []ProductCard `json:"products,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}
