package extract

import (
	"errors"
	"strings"
	"testing"

	"github.com/docuchat/bot/internal/testutil"
)

func TestExtractSinglePage(t *testing.T) {
	data := testutil.MakePDF("Article 5: fees are waived for students.")

	res, err := NewExtractor().Extract(data)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if res.Pages != 1 {
		t.Errorf("expected 1 page, got %d", res.Pages)
	}
	if !strings.Contains(res.Text, "fees are waived for students") {
		t.Errorf("expected the document text, got %q", res.Text)
	}
}

func TestExtractNotPDF(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"plain text", []byte("just some text")},
		{"truncated magic", []byte("%PDF")},
		{"html", []byte("<html><body>nope</body></html>")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewExtractor().Extract(tt.data)
			if !errors.Is(err, ErrNotPDF) {
				t.Errorf("expected ErrNotPDF, got %v", err)
			}
		})
	}
}

func TestExtractCorrupted(t *testing.T) {
	data := []byte("%PDF-1.4\nthis is not a real pdf body")

	_, err := NewExtractor().Extract(data)
	if err == nil {
		t.Fatal("expected an error for a corrupted file")
	}
	if errors.Is(err, ErrNotPDF) || errors.Is(err, ErrNoText) {
		t.Errorf("expected a parse error, got %v", err)
	}
}

func TestExtractNoText(t *testing.T) {
	data := testutil.MakeEmptyPDF()

	_, err := NewExtractor().Extract(data)
	if !errors.Is(err, ErrNoText) {
		t.Fatalf("expected ErrNoText, got %v", err)
	}
}

func TestExtractKeepsPageOrder(t *testing.T) {
	// single-page builder, so order is trivially page 1; the point is
	// that the text comes back intact from front to back
	data := testutil.MakePDF("alpha beta gamma")

	res, err := NewExtractor().Extract(data)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	a := strings.Index(res.Text, "alpha")
	g := strings.Index(res.Text, "gamma")
	if a == -1 || g == -1 || a > g {
		t.Errorf("expected text in drawing order, got %q", res.Text)
	}
}
