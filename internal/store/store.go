// Package store keeps the active document for each chat.
package store

import (
	"sync"

	"github.com/docuchat/bot/internal/models"
)

// Store maps a Telegram chat to its active document. State is in-memory
// only and lives for the process lifetime; entries are explicitly
// replaced or cleared, never evicted, so the key space stays bounded by
// active chats.
type Store struct {
	docs map[int64]*models.Document
	mu   sync.RWMutex
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		docs: make(map[int64]*models.Document),
	}
}

// Set replaces the active document for a chat.
func (s *Store) Set(chatID int64, doc *models.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[chatID] = doc
}

// Get returns the active document for a chat, if any. An unknown chat
// is absent, not an error.
func (s *Store) Get(chatID int64) (*models.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[chatID]
	return doc, ok
}

// Clear removes the active document for a chat and reports whether one
// was present. Clearing a chat with nothing set is not an error.
func (s *Store) Clear(chatID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.docs[chatID]
	delete(s.docs, chatID)
	return ok
}

// Count returns the number of chats currently holding a document.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
