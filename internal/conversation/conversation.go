// Package conversation keeps the append-only, ordered message log of a
// chat session. Messages are never mutated or removed once appended, so
// display order, append order and chronological order are always the same
// sequence.
package conversation

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message is a single chat entry. Content may carry lightweight **bold**
// markup; rendering is the presentation layer's concern.
type Message struct {
	ID        uuid.UUID
	Content   string
	Sender    Sender
	Timestamp time.Time
}

// Log is an append-only message sequence, safe for concurrent use.
type Log struct {
	mu       sync.RWMutex
	messages []Message
}

func NewLog() *Log {
	return &Log{}
}

// Append assigns an id and timestamp at call time and adds the message to
// the tail of the sequence.
func (l *Log) Append(sender Sender, content string) Message {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := Message{
		ID:        uuid.New(),
		Content:   content,
		Sender:    sender,
		Timestamp: time.Now(),
	}
	l.messages = append(l.messages, msg)

	return msg
}

// Messages returns the full sequence in append order.
func (l *Log) Messages() []Message {
	l.mu.RLock()
	defer l.mu.RUnlock()

	msgs := make([]Message, len(l.messages))
	copy(msgs, l.messages)

	return msgs
}

// Len returns the number of appended messages.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.messages)
}
