package areply

import (
	"strings"
	"testing"
)

func widgetInput() Input {
	return Input{
		Symbol: Symbol{
			Name: "Widget",
			Kind: "function",
			Path: "pkg/widget.py",
			Line: 3,
		},
		Source:  Source{StartLine: 3, EndLine: 9, Body: "def widget(): ..."},
		Imports: []string{"os", "json"},
		Calls:   []string{"normalize"},
	}
}

func TestRenderPromptDefault(t *testing.T) {
	got := RenderPrompt("", widgetInput())

	want := "Summarize function Widget in pkg/widget.py (line 3). Return JSON matching output_schema."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderPromptCustom(t *testing.T) {
	got := RenderPrompt("Explain {{ .Symbol.Name }} using {{ index .Imports 0 }}.", widgetInput())

	if got != "Explain Widget using os." {
		t.Fatalf("unexpected prompt: %q", got)
	}
}

func TestRenderPromptTrimsWhitespace(t *testing.T) {
	got := RenderPrompt("  Describe {{ .Symbol.Name }}.\n\n", widgetInput())

	if got != "Describe Widget." {
		t.Fatalf("expected trimmed prompt, got %q", got)
	}
}

func TestRenderPromptFallbackOnParseError(t *testing.T) {
	got := RenderPrompt("{{", widgetInput())

	if !strings.HasPrefix(got, "Summarize function Widget") {
		t.Fatalf("expected fallback to default template, got %q", got)
	}
}

func TestRenderPromptFallbackOnExecuteError(t *testing.T) {
	got := RenderPrompt("{{ call .Symbol.Name }}", widgetInput())

	if !strings.HasPrefix(got, "Summarize function Widget") {
		t.Fatalf("expected fallback to default template, got %q", got)
	}
}
