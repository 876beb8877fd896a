// Package gemini answers questions grounded to an uploaded document's
// text using Google's Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// ErrEmptyAnswer means the model returned no usable text.
var ErrEmptyAnswer = errors.New("model returned an empty answer")

// Client wraps the genai SDK for grounded question answering.
type Client struct {
	client      *genai.Client
	model       string
	temperature float32
	log         *zap.Logger
}

// NewClient creates a Gemini client against the public Gemini API.
func NewClient(ctx context.Context, apiKey, model string, temperature float32, log *zap.Logger) (*Client, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	return &Client{
		client:      c,
		model:       model,
		temperature: temperature,
		log:         log,
	}, nil
}

// Answer asks the model the question against the document text. One
// attempt, no retry; the document goes in whole, never truncated, and
// the model's text comes back verbatim.
func (c *Client) Answer(ctx context.Context, document, question string) (string, error) {
	prompt := BuildPrompt(document, question)

	c.log.Debug("generating answer",
		zap.String("model", c.model),
		zap.Int("contextBytes", len(document)),
		zap.Int("questionBytes", len(question)))

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(prompt)}, genai.RoleUser),
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(c.temperature),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("generating answer: %w", err)
	}

	answer := strings.TrimSpace(resp.Text())
	if answer == "" {
		return "", ErrEmptyAnswer
	}
	return answer, nil
}

// BuildPrompt assembles the grounded completion prompt: document context
// first, then the question, then the answer cue.
func BuildPrompt(document, question string) string {
	var sb strings.Builder
	sb.WriteString("You answer questions about a document. Use ONLY the document text below. ")
	sb.WriteString("If the answer is not contained in the document, say so explicitly instead of guessing.\n\n")
	sb.WriteString("Document:\n---------------------\n")
	sb.WriteString(document)
	sb.WriteString("\n---------------------\n\n")
	sb.WriteString("Question: ")
	sb.WriteString(question)
	sb.WriteString("\n\nAnswer:")
	return sb.String()
}
