// Package main provides a test agent that fails with a non-zero exit code.
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
	fmt.Fprintln(os.Stderr, "agent backend unavailable")
	os.Exit(3)
}
