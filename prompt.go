package areply

import (
	"strings"
	"text/template"
)

// DefaultPromptTemplate is the prompt used when no template is configured
// or the configured one fails to render.
const DefaultPromptTemplate = "Summarize {{ .Symbol.Kind }} {{ .Symbol.Name }} in {{ .Symbol.Path }} (line {{ .Symbol.Line }}). Return JSON matching output_schema."

// RenderPrompt executes tmpl against the request input. Templates see the
// fields of Input directly ({{ .Symbol.Name }}, {{ .Source.Body }},
// {{ .Imports }}, ...) plus the whole payload as {{ .Input }}. A template
// that is empty, fails to parse, or fails to execute falls back to
// DefaultPromptTemplate. The result is whitespace-trimmed.
func RenderPrompt(tmpl string, input Input) string {
	data := promptData{
		Input:    input,
		Symbol:   input.Symbol,
		Source:   input.Source,
		Imports:  input.Imports,
		Calls:    input.Calls,
		CalledBy: input.CalledBy,
	}

	if prompt := executePromptTemplate(tmpl, data); prompt != "" {
		return prompt
	}

	return executePromptTemplate(DefaultPromptTemplate, data)
}

type promptData struct {
	Input    Input
	Symbol   Symbol
	Source   Source
	Imports  []string
	Calls    []string
	CalledBy []string
}

func executePromptTemplate(raw string, data any) string {
	tmpl, err := template.New("prompt").Parse(raw)
	if err != nil {
		return ""
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return ""
	}

	return strings.TrimSpace(buf.String())
}
