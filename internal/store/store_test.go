package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/docuchat/bot/internal/models"
)

func testDoc(name, text string) *models.Document {
	return models.NewDocument("doc-"+name, name, text, 1, int64(len(text)), "")
}

func TestSetGetRoundTrip(t *testing.T) {
	s := NewStore()

	doc := testDoc("contract.pdf", "Article 5: fees are waived for students.")
	s.Set(42, doc)

	got, ok := s.Get(42)
	if !ok {
		t.Fatal("expected a document after Set")
	}
	if got != doc {
		t.Errorf("expected the exact document back, got %+v", got)
	}
	if got.Text != "Article 5: fees are waived for students." {
		t.Errorf("unexpected text: %q", got.Text)
	}
}

func TestGetUnknownChat(t *testing.T) {
	s := NewStore()

	if doc, ok := s.Get(99); ok || doc != nil {
		t.Errorf("expected absent for unknown chat, got %+v", doc)
	}
}

func TestSetReplaces(t *testing.T) {
	s := NewStore()

	s.Set(1, testDoc("first.pdf", "first"))
	s.Set(1, testDoc("second.pdf", "second"))

	got, ok := s.Get(1)
	if !ok || got.Text != "second" {
		t.Fatalf("expected the second document, got %+v", got)
	}
	if s.Count() != 1 {
		t.Errorf("expected 1 document, got %d", s.Count())
	}
}

func TestClearIdempotent(t *testing.T) {
	s := NewStore()
	s.Set(7, testDoc("a.pdf", "a"))

	if !s.Clear(7) {
		t.Error("expected Clear to report a removed document")
	}
	if _, ok := s.Get(7); ok {
		t.Error("expected absent after Clear")
	}
	if s.Clear(7) {
		t.Error("expected second Clear to report nothing removed")
	}
	if s.Clear(12345) {
		t.Error("expected Clear on an unknown chat to report nothing removed")
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			chatID := int64(n % 5)
			s.Set(chatID, testDoc(fmt.Sprintf("doc-%d.pdf", n), "text"))
			s.Get(chatID)
			if n%10 == 0 {
				s.Clear(chatID)
			}
		}(i)
	}
	wg.Wait()

	if s.Count() > 5 {
		t.Errorf("expected at most 5 documents, got %d", s.Count())
	}
}
