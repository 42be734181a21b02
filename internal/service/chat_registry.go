package service

import (
	"sync"

	"studykit/internal/domain"
	"studykit/internal/util"
)

// ChatRegistry holds live chat sessions for the process lifetime. Sessions
// are never persisted; a restart drops them all.
type ChatRegistry struct {
	mu       sync.RWMutex
	sessions map[string]domain.ChatSession
}

// NewChatRegistry creates an empty registry.
func NewChatRegistry() *ChatRegistry {
	return &ChatRegistry{sessions: make(map[string]domain.ChatSession)}
}

// Add stores the session under a fresh ULID and returns the id.
func (r *ChatRegistry) Add(session domain.ChatSession) string {
	id := util.NewULID()
	r.mu.Lock()
	r.sessions[id] = session
	r.mu.Unlock()
	return id
}

// Get returns the session for id, if any.
func (r *ChatRegistry) Get(id string) (domain.ChatSession, bool) {
	r.mu.RLock()
	session, ok := r.sessions[id]
	r.mu.RUnlock()
	return session, ok
}

// Remove drops the session for id. Removing an unknown id is a no-op.
func (r *ChatRegistry) Remove(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}
