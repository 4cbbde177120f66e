// Package main provides a test agent that answers too late.
package main

import (
	"fmt"
	"io"
	"os"
	"time"
)

func main() {
	if _, err := io.ReadAll(os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	time.Sleep(2 * time.Second)
	fmt.Println(`{"summary":"late","purpose":"exercise timeouts","side_effects":"none","confidence":"low"}`)
}
