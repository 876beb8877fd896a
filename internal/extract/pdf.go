// Package extract turns uploaded PDF bytes into plain text.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrNotPDF means the payload does not look like a PDF at all.
	ErrNotPDF = errors.New("not a PDF document")
	// ErrNoText means the PDF parsed but yielded no text, typically a
	// pure-image scan with no embedded text layer.
	ErrNoText = errors.New("no extractable text in document")
)

// Result holds the output of a successful extraction.
type Result struct {
	Text  string
	Pages int
}

// Extractor extracts plain text from in-memory PDF data.
type Extractor struct{}

// NewExtractor creates an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the concatenated text of all pages, in page order.
// Pages without extractable text are skipped; a document where every
// page comes up empty fails with ErrNoText.
func (e *Extractor) Extract(data []byte) (res *Result, err error) {
	if !looksLikePDF(data) {
		return nil, ErrNotPDF
	}

	// The pdf library panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("parse pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	pages := reader.NumPage()
	var sb strings.Builder
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(text)
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return nil, ErrNoText
	}

	return &Result{Text: text, Pages: pages}, nil
}

func looksLikePDF(data []byte) bool {
	return len(data) >= 5 && string(data[:5]) == "%PDF-"
}
