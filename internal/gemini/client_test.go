package gemini

import (
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	doc := "Article 5: fees are waived for students."
	question := "Are fees waived for students?"

	prompt := BuildPrompt(doc, question)

	if !strings.Contains(prompt, doc) {
		t.Error("prompt must include the document text")
	}
	if !strings.Contains(prompt, question) {
		t.Error("prompt must include the question")
	}
	if !strings.Contains(prompt, "ONLY") {
		t.Error("prompt must restrict the model to the supplied document")
	}
	if !strings.Contains(prompt, "not contained") {
		t.Error("prompt must tell the model to flag unanswerable questions")
	}
	if strings.Index(prompt, doc) > strings.Index(prompt, question) {
		t.Error("document context must precede the question")
	}
	if !strings.HasSuffix(prompt, "Answer:") {
		t.Errorf("prompt should end with the answer cue, got %q", prompt[len(prompt)-20:])
	}
}

func TestBuildPromptKeepsDocumentVerbatim(t *testing.T) {
	doc := "line one\n\tindented\nspecial: %s {braces} <tags>"

	prompt := BuildPrompt(doc, "q")
	if !strings.Contains(prompt, doc) {
		t.Error("document text must be embedded without modification")
	}
}
