package core

import "sync"

// FlashKind labels a flash message for presentation.
type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
)

// FlashMessage is a message-of-the-moment shown on the next page view.
type FlashMessage struct {
	Kind FlashKind `json:"kind"`
	Text string    `json:"text"`
}

// FlashStore keeps per-scope transient messages that are cleared after one
// read. The scope is typically a session id, or a visitor id for flows that
// run without a session (registration, password reset). State is explicit
// and passed by scope - there is no ambient global.
type FlashStore struct {
	mu       sync.Mutex
	messages map[string][]FlashMessage
}

func NewFlashStore() *FlashStore {
	return &FlashStore{messages: make(map[string][]FlashMessage)}
}

// Add appends a message for the scope.
func (f *FlashStore) Add(scope string, kind FlashKind, text string) {
	if scope == "" {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages[scope] = append(f.messages[scope], FlashMessage{Kind: kind, Text: text})
}

// Take returns the pending messages for the scope and clears them. A second
// Take sees nothing.
func (f *FlashStore) Take(scope string) []FlashMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	msgs := f.messages[scope]
	delete(f.messages, scope)
	return msgs
}
