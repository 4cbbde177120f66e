// Package main provides a well-behaved description agent for tests.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

type request struct {
	Agent  string `json:"agent"`
	Prompt string `json:"prompt"`
	Input  struct {
		Symbol struct {
			Name string `json:"name"`
			Kind string `json:"kind"`
			Path string `json:"path"`
		} `json:"symbol"`
	} `json:"input"`
}

type response struct {
	Summary     string `json:"summary"`
	Purpose     string `json:"purpose"`
	SideEffects string `json:"side_effects"`
	Confidence  string `json:"confidence"`
}

func main() {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	var req request
	if err := json.Unmarshal(data, &req); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	sym := req.Input.Symbol
	resp := response{
		Summary:     fmt.Sprintf("%s %s at %s", sym.Kind, sym.Name, sym.Path),
		Purpose:     fmt.Sprintf("prompt: %s", req.Prompt),
		SideEffects: "none observed",
		Confidence:  "high",
	}
	encoded, err := json.Marshal(resp)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(string(encoded))
}
