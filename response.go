package areply

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Response is the four-field description an agent answers with. Field
// order matches the serialized key order.
type Response struct {
	Summary     string `json:"summary"`
	Purpose     string `json:"purpose"`
	SideEffects string `json:"side_effects"`
	Confidence  string `json:"confidence"`
}

// DecodeResponse parses agent stdout. The whole stream is tried first;
// agents that chat before answering are accepted by scanning backwards for
// the last line that parses as JSON. The returned bytes are the exact
// candidate that parsed, suitable for schema validation.
func DecodeResponse(data []byte) (Response, []byte, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Response{}, nil, ErrEmptyResponse
	}

	var resp Response
	if err := json.Unmarshal(trimmed, &resp); err == nil {
		return resp, trimmed, nil
	}

	lines := bytes.Split(trimmed, []byte("\n"))
	for i := len(lines) - 1; i >= 0; i-- {
		candidate := bytes.TrimSpace(lines[i])
		if len(candidate) == 0 {
			continue
		}

		if err := json.Unmarshal(candidate, &resp); err == nil {
			return resp, candidate, nil
		}
	}

	return Response{}, nil, ErrInvalidResponse
}

// Validate checks the construction-time rules: summary, purpose, and
// side_effects must be non-blank, confidence one of low|medium|high
// compared case-insensitively.
func (r Response) Validate() error {
	if strings.TrimSpace(r.Summary) == "" {
		return fmt.Errorf("%w: missing summary", ErrInvalidResponse)
	}

	if strings.TrimSpace(r.Purpose) == "" {
		return fmt.Errorf("%w: missing purpose", ErrInvalidResponse)
	}

	if strings.TrimSpace(r.SideEffects) == "" {
		return fmt.Errorf("%w: missing side_effects", ErrInvalidResponse)
	}

	switch strings.ToLower(strings.TrimSpace(r.Confidence)) {
	case "low", "medium", "high":
		return nil
	default:
		return fmt.Errorf("%w: confidence must be one of low|medium|high", ErrInvalidResponse)
	}
}

// Canonical returns the response with confidence trimmed and lowercased.
func (r Response) Canonical() Response {
	r.Confidence = strings.ToLower(strings.TrimSpace(r.Confidence))

	return r
}
