package areply

import "github.com/google/uuid"

// DefaultScope labels single-target invocations.
const DefaultScope = "target"

// Request is the envelope piped to an agent's stdin.
type Request struct {
	Agent         string         `json:"agent"`
	Scope         string         `json:"scope"`
	Prompt        string         `json:"prompt"`
	RunID         string         `json:"run_id,omitempty"`
	Input         Input          `json:"input"`
	OutputSchema  map[string]any `json:"output_schema"`
	SchemaVersion string         `json:"schema_version"`
}

// Input carries the symbol under description and its surrounding context.
type Input struct {
	Symbol   Symbol   `json:"symbol"`
	Source   Source   `json:"source"`
	Imports  []string `json:"imports,omitempty"`
	Calls    []string `json:"calls,omitempty"`
	CalledBy []string `json:"called_by,omitempty"`
}

// Symbol identifies the code entity a request asks about.
type Symbol struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Signature string `json:"signature"`
	Path      string `json:"path"`
	Language  string `json:"language"`
	Line      int    `json:"line"`
}

// Source is the span of source text behind the symbol.
type Source struct {
	StartLine int    `json:"start_line"`
	EndLine   int    `json:"end_line"`
	Body      string `json:"body,omitempty"`
}

// NewRequest builds the canonical envelope for one agent invocation: scope
// defaults to target, a fresh run id is assigned, and the output schema and
// its version are attached.
func NewRequest(agent string, input Input) Request {
	return Request{
		Agent:         agent,
		Scope:         DefaultScope,
		RunID:         uuid.New().String(),
		Input:         input,
		OutputSchema:  OutputSchema(),
		SchemaVersion: SchemaVersion,
	}
}

const (
	defaultName = "symbol"
	defaultKind = "symbol"
)

// ExtractSymbol reads input.symbol out of a decoded request document.
// Values that are absent, null, or the wrong shape collapse at each level:
// objects become empty, name and kind fall back to "symbol", every other
// field to its zero value. Any valid JSON document yields a usable Symbol.
func ExtractSymbol(doc any) Symbol {
	input := asObject(asObject(doc)["input"])
	symbol := asObject(input["symbol"])

	return Symbol{
		ID:        stringOr(symbol["id"], ""),
		Name:      stringOr(symbol["name"], defaultName),
		Kind:      stringOr(symbol["kind"], defaultKind),
		Signature: stringOr(symbol["signature"], ""),
		Path:      stringOr(symbol["path"], ""),
		Language:  stringOr(symbol["language"], ""),
		Line:      intOr(symbol["line"]),
	}
}

func asObject(v any) map[string]any {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	return obj
}

func stringOr(v any, fallback string) string {
	s, ok := v.(string)
	if !ok {
		return fallback
	}

	return s
}

func intOr(v any) int {
	f, ok := v.(float64)
	if !ok {
		return 0
	}

	return int(f)
}
