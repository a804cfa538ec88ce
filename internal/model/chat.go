package model

import "time"

// ChatRole tags who produced a chat message.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one entry of a session's question/answer transcript.
// The transcript is append-only and reset whenever a new timetable is loaded.
type ChatMessage struct {
	Role ChatRole  `json:"role"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}
