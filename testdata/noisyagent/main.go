// Package main provides a test agent that chats on stdout before answering.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	if _, err := io.ReadAll(os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("loading model weights...")
	fmt.Fprintln(os.Stderr, "still warming up")
	fmt.Println("thinking about the symbol")
	fmt.Println(`{"summary":"noisy but valid","purpose":"exercise the last-line decode","side_effects":"stdout chatter","confidence":"low"}`)
}
