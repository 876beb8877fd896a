// interfaces.go - Handler dependency interfaces
// These allow mocking the Telegram, extraction and Gemini boundaries in tests.
package bot

import (
	"context"

	"github.com/docuchat/bot/internal/extract"
)

// Messenger sends and edits chat messages and fetches uploads.
type Messenger interface {
	SendMessage(chatID int64, text string) (int, error)
	EditMessage(chatID int64, messageID int, text string) error
	SendTyping(chatID int64) error
	DownloadDocument(fileID string) ([]byte, error)
}

// Extractor turns PDF bytes into plain text.
type Extractor interface {
	Extract(data []byte) (*extract.Result, error)
}

// Answerer produces a grounded answer for a question about a document.
type Answerer interface {
	Answer(ctx context.Context, document, question string) (string, error)
}
