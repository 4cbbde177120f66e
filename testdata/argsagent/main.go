// Package main provides a test agent that echoes its argv as the summary.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

type response struct {
	Summary     string `json:"summary"`
	Purpose     string `json:"purpose"`
	SideEffects string `json:"side_effects"`
	Confidence  string `json:"confidence"`
}

func main() {
	if _, err := io.ReadAll(os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	resp := response{
		Summary:     strings.Join(os.Args[1:], " "),
		Purpose:     "echo expanded arguments",
		SideEffects: "none",
		Confidence:  "medium",
	}
	encoded, err := json.Marshal(resp)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(string(encoded))
}
