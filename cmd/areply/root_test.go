package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"
)

func TestRootCmd(t *testing.T) {
	cmd := newRootCmd()
	if cmd == nil {
		t.Fatal("newRootCmd() returned nil")
	}

	if cmd.Use != "areply" {
		t.Errorf("expected use 'areply', got '%s'", cmd.Use)
	}

	subCommands := []string{"respond", "invoke", "schema", "quickstart", "version"}
	for _, sub := range subCommands {
		found := false
		for _, c := range cmd.Commands() {
			if c.Name() == sub {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %s not found", sub)
		}
	}
}

func TestRootRunsResponder(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(`{"input":{"symbol":{"name":"Widget","kind":"function","path":"pkg/widget.py"}}}`))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	want := `{"summary":"function Widget in pkg/widget.py.","purpose":"Describe responsibilities of Widget.","side_effects":"Unknown from static analysis.","confidence":"medium"}` + "\n"
	if out.String() != want {
		t.Fatalf("unexpected response:\n got %q\nwant %q", out.String(), want)
	}
}

func TestRootRejectsMalformedRequest(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader("not json"))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for malformed request")
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout on error, got %q", out.String())
	}
}

func TestRespondCmd(t *testing.T) {
	cmd := newRespondCmd()
	cmd.SetIn(strings.NewReader(`{}`))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	want := `{"summary":"symbol symbol in .","purpose":"Describe responsibilities of symbol.","side_effects":"Unknown from static analysis.","confidence":"medium"}` + "\n"
	if out.String() != want {
		t.Fatalf("unexpected response:\n got %q\nwant %q", out.String(), want)
	}
}

func TestSchemaCmd(t *testing.T) {
	cmd := newSchemaCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	if !strings.HasSuffix(out.String(), "\n") {
		t.Error("expected trailing newline")
	}

	var schema map[string]any
	if err := json.Unmarshal(out.Bytes(), &schema); err != nil {
		t.Fatalf("schema output is not JSON: %v", err)
	}
	if schema["type"] != "object" {
		t.Errorf("expected object schema, got %v", schema["type"])
	}
}

func TestVersionCmd(t *testing.T) {
	cmd := newVersionCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	want := "areply " + version + "\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestQuickstartCmd(t *testing.T) {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	cmd := newQuickstartCmd()
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		os.Stdout = old
		t.Fatalf("quickstart failed: %v", err)
	}

	w.Close()
	os.Stdout = old

	var b bytes.Buffer
	io.Copy(&b, r)

	if b.Len() == 0 {
		t.Error("expected quickstart output, got nothing")
	}
	if !strings.Contains(b.String(), "invoke") {
		t.Error("expected quickstart to mention the invoke subcommand")
	}
}
