package areply

import "errors"

var (
	// ErrEmptyCommand indicates the agent command has no arguments left
	// after expansion.
	ErrEmptyCommand = errors.New("agent command is empty")
	// ErrRunFailed indicates the agent exited with a non-zero code.
	ErrRunFailed = errors.New("agent run failed")
	// ErrEmptyResponse indicates the agent produced no stdout.
	ErrEmptyResponse = errors.New("agent stdout is empty")
	// ErrInvalidResponse indicates stdout held no usable description object.
	ErrInvalidResponse = errors.New("agent response is not a valid JSON object")
	// ErrSchemaMismatch indicates the response does not satisfy the output schema.
	ErrSchemaMismatch = errors.New("agent response does not match schema")
)
