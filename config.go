// Package areply provides the wire protocol and runner for symbol
// description agents.
package areply

// AgentConfig describes how to run an agent.
type AgentConfig struct {
	Cmd    []string `json:"cmd"`
	UseTTY bool     `json:"use_tty,omitempty"`
}
