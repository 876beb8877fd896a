// Command diagnose checks Gemini API access and lists the models the
// configured key can use for text generation. Handy when the hosted
// model set shifts underneath a deployment.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	_ = godotenv.Load()

	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "GOOGLE_API_KEY is not set")
		os.Exit(1)
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating Gemini client: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Models supporting generateContent:")
	count := 0
	found := false
	for m, err := range client.Models.All(ctx) {
		if err != nil {
			fmt.Fprintf(os.Stderr, "listing models: %v\n", err)
			os.Exit(1)
		}
		if !supportsGenerate(m) {
			continue
		}
		count++

		name := strings.TrimPrefix(m.Name, "models/")
		marker := "  "
		if name == model {
			marker = "* "
			found = true
		}
		fmt.Printf("%s%s\n", marker, name)
	}

	fmt.Printf("\n%d usable models\n", count)
	if !found {
		fmt.Fprintf(os.Stderr, "configured model %q does not support generateContent with this key\n", model)
		os.Exit(1)
	}
	fmt.Printf("configured model %q is available\n", model)
}

func supportsGenerate(m *genai.Model) bool {
	for _, action := range m.SupportedActions {
		if action == "generateContent" {
			return true
		}
	}
	return false
}
