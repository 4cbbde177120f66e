package areply

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// ExpandCommand substitutes request placeholders in an agent command.
// A whole argument equal to a placeholder name is replaced by its value;
// {{KEY}} and ${KEY} forms are substituted inside arguments. The *_FILE
// placeholders resolve to private temp files holding the corresponding
// JSON; the returned cleanup removes them. Unknown tokens pass through
// untouched and blank arguments are dropped.
func ExpandCommand(command []string, req Request) ([]string, func(), error) {
	requestJSON, err := json.Marshal(req)
	if err != nil {
		return nil, func() {}, fmt.Errorf("marshal request: %w", err)
	}

	inputJSON, err := json.Marshal(req.Input)
	if err != nil {
		return nil, func() {}, fmt.Errorf("marshal input: %w", err)
	}

	schemaJSON, err := json.Marshal(req.OutputSchema)
	if err != nil {
		return nil, func() {}, fmt.Errorf("marshal output schema: %w", err)
	}

	inline := map[string]string{
		"PROMPT":           req.Prompt,
		"JSON_SCHEMA_JSON": string(schemaJSON),
		"INPUT_JSON":       string(inputJSON),
		"REQUEST_JSON":     string(requestJSON),
		"AGENT":            req.Agent,
		"SCOPE":            req.Scope,
		"RUN_ID":           req.RunID,
		"SCHEMA_VERSION":   req.SchemaVersion,
	}

	fileContents := map[string][]byte{
		"INPUT_JSON_FILE":   inputJSON,
		"REQUEST_JSON_FILE": requestJSON,
		"JSON_SCHEMA_FILE":  schemaJSON,
	}

	fileReplacements := make(map[string]string)
	cleanupPaths := make([]string, 0)
	cleanup := func() {
		for _, path := range cleanupPaths {
			_ = os.Remove(path)
		}
	}

	resolveFileReplacement := func(key string) (string, error) {
		if value, ok := fileReplacements[key]; ok {
			return value, nil
		}

		content, ok := fileContents[key]
		if !ok {
			return "", fmt.Errorf("unknown file placeholder %q", key)
		}

		path, err := writeTempJSON(content)
		if err != nil {
			return "", err
		}

		fileReplacements[key] = path
		cleanupPaths = append(cleanupPaths, path)

		return path, nil
	}

	out := make([]string, 0, len(command))

	for _, arg := range command {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}

		if replaced, ok := inline[arg]; ok {
			out = append(out, replaced)
			continue
		}

		if _, ok := fileContents[arg]; ok {
			replaced, err := resolveFileReplacement(arg)
			if err != nil {
				cleanup()

				return nil, func() {}, err
			}

			out = append(out, replaced)

			continue
		}

		expanded := arg
		for key, value := range inline {
			expanded = strings.ReplaceAll(expanded, "{{"+key+"}}", value)
			expanded = strings.ReplaceAll(expanded, "${"+key+"}", value)
		}

		for key := range fileContents {
			if strings.Contains(expanded, "{{"+key+"}}") || strings.Contains(expanded, "${"+key+"}") {
				value, err := resolveFileReplacement(key)
				if err != nil {
					cleanup()

					return nil, func() {}, err
				}

				expanded = strings.ReplaceAll(expanded, "{{"+key+"}}", value)
				expanded = strings.ReplaceAll(expanded, "${"+key+"}", value)
			}
		}

		out = append(out, expanded)
	}

	sanitized, err := sanitizeCommand(out)
	if err != nil {
		cleanup()

		return nil, func() {}, err
	}

	return sanitized, cleanup, nil
}

func sanitizeCommand(command []string) ([]string, error) {
	out := make([]string, 0, len(command))

	for _, part := range command {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		out = append(out, part)
	}

	if len(out) == 0 {
		return nil, ErrEmptyCommand
	}

	return out, nil
}
