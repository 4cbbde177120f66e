// Package main provides a test agent that answers with text that is not JSON.
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
	fmt.Println("the symbol looks fine to me")
}
