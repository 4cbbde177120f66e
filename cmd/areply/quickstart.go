package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newQuickstartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quickstart",
		Short: "Show examples and usage instructions",
		Run: func(_ *cobra.Command, _ []string) {
			printQuickstart()
		},
	}
}

func printQuickstart() {
	fmt.Println(`Quickstart Guide for areply

1. Built-in Responder
   Answer one description request from stdin.

   echo '{"input":{"symbol":{"name":"Widget","kind":"function","path":"pkg/widget.py"}}}' | areply

2. Generic Invocation (invoke)
   Drive any agent command; the request envelope arrives on its stdin.

   areply invoke python3 agent.py \
     --input='{"symbol":{"name":"Widget","kind":"function","path":"pkg/widget.py"}}' \
     --timeout=60s

3. Placeholders
   Agent arguments named PROMPT, AGENT, SCOPE, RUN_ID, INPUT_JSON,
   REQUEST_JSON, or JSON_SCHEMA_JSON expand inline before the agent
   starts; INPUT_JSON_FILE, REQUEST_JSON_FILE, and JSON_SCHEMA_FILE
   expand to temp file paths. {{KEY}} and ${KEY} work inside arguments.

   areply invoke my-agent REQUEST_JSON_FILE \
     --input='{"symbol":{"name":"Widget","kind":"function","path":"pkg/widget.py"}}' \
     --extra-args=--format=json

4. Prompt Templates
   Render the request prompt from the input payload.

   areply invoke my-agent \
     --prompt-template='Explain {{ .Symbol.Name }} from {{ .Symbol.Path }}.' \
     --input='{"symbol":{"name":"Widget","kind":"function","path":"pkg/widget.py"}}'

5. Schema
   Print the output schema agent responses must satisfy.

   areply schema

See README.md for more details.`)
}
