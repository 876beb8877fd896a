// mock_messenger.go - Recording messenger implementation for testing
package testutil

import (
	"errors"
	"sync"
)

// SentMessage records one outbound message or edit.
type SentMessage struct {
	ChatID    int64
	MessageID int
	Text      string
	Edited    bool
}

// MockMessenger satisfies the handler's Messenger interface and records
// every call for assertions.
type MockMessenger struct {
	mu     sync.Mutex
	outbox []SentMessage
	typing []int64
	files  map[string][]byte
	nextID int

	SendErr     error
	EditErr     error
	DownloadErr error
}

// NewMockMessenger creates an empty mock.
func NewMockMessenger() *MockMessenger {
	return &MockMessenger{
		files: make(map[string][]byte),
	}
}

func (m *MockMessenger) SendMessage(chatID int64, text string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SendErr != nil {
		return 0, m.SendErr
	}

	m.nextID++
	m.outbox = append(m.outbox, SentMessage{
		ChatID:    chatID,
		MessageID: m.nextID,
		Text:      text,
	})
	return m.nextID, nil
}

func (m *MockMessenger) EditMessage(chatID int64, messageID int, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.EditErr != nil {
		return m.EditErr
	}

	m.outbox = append(m.outbox, SentMessage{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      text,
		Edited:    true,
	})
	return nil
}

func (m *MockMessenger) SendTyping(chatID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.typing = append(m.typing, chatID)
	return nil
}

func (m *MockMessenger) DownloadDocument(fileID string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.DownloadErr != nil {
		return nil, m.DownloadErr
	}

	data, ok := m.files[fileID]
	if !ok {
		return nil, errors.New("file not found")
	}
	return data, nil
}

// Test Helper Methods

// AddFile registers downloadable file content under a file ID.
func (m *MockMessenger) AddFile(fileID string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[fileID] = data
}

// Outbox returns all sent and edited messages in order.
func (m *MockMessenger) Outbox() []SentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentMessage, len(m.outbox))
	copy(out, m.outbox)
	return out
}

// LastText returns the text of the most recent send or edit.
func (m *MockMessenger) LastText() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.outbox) == 0 {
		return ""
	}
	return m.outbox[len(m.outbox)-1].Text
}

// TypingCount returns how many typing actions were sent.
func (m *MockMessenger) TypingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.typing)
}

// Reset clears the recorded traffic but keeps registered files.
func (m *MockMessenger) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outbox = nil
	m.typing = nil
}
