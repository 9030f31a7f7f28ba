package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRenderVersionJSONIsEscapeFree(t *testing.T) {
	var sb strings.Builder
	if err := renderVersionJSON(&sb, collectVersionInfo()); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if strings.ContainsRune(out, 0x1b) {
		t.Fatalf("json output must not carry ANSI escapes: %q", out)
	}

	var payload versionPayload
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if payload.Version != "0.1.0-dev" {
		t.Fatalf("unexpected version: %q", payload.Version)
	}
}
