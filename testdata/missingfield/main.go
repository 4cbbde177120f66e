// Package main provides a test agent that drops required response fields.
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
	fmt.Println(`{"summary":"only a summary"}`)
}
