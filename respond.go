package areply

import (
	"encoding/json"
	"fmt"
	"io"
)

const (
	unknownSideEffects = "Unknown from static analysis."
	defaultConfidence  = "medium"
)

// Describe renders the default description for a symbol. It is the answer
// the built-in responder gives when no external agent is involved.
func Describe(sym Symbol) Response {
	return Response{
		Summary:     fmt.Sprintf("%s %s in %s.", sym.Kind, sym.Name, sym.Path),
		Purpose:     fmt.Sprintf("Describe responsibilities of %s.", sym.Name),
		SideEffects: unknownSideEffects,
		Confidence:  defaultConfidence,
	}
}

// Respond reads one JSON request document from r and writes the default
// description for its symbol to w. Requests with missing or misshapen
// fields still produce a response via the defaulting rules of
// ExtractSymbol; text that is not valid JSON is the only request error.
// Nothing is written to w on error.
func Respond(r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read request: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse request: %w", err)
	}

	return WriteResponse(w, Describe(ExtractSymbol(doc)))
}

// WriteResponse encodes resp to w as a single newline-terminated JSON object.
func WriteResponse(w io.Writer, resp Response) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("encode response: %w", err)
	}

	return nil
}
