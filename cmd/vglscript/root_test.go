package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const script = `
steps:
  - {action: mount, id: a, name: A, position: "1 2 3"}
  - {action: mount, id: b, parent: a, kind: group}
  - {action: mount, id: c, parent: b, name: C, rotation: "0 0 0 ZYX", position: [bad, 0, 0]}
`

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.yaml")
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	cmd := newRootCommand("test")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, path))
	err := cmd.Execute()
	return out.String(), err
}

func TestTreeOutput(t *testing.T) {
	out, err := runCommand(t)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "scene#") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  A#") || !strings.Contains(lines[1], "position=(1 2 3)") {
		t.Errorf("line 1 = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "    C#") || !strings.Contains(lines[2], "ZYX") || !strings.Contains(lines[2], "position=(NaN 0 0)") {
		t.Errorf("line 2 = %q", lines[2])
	}
}

func TestJSONOutput(t *testing.T) {
	out, err := runCommand(t, "--json")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	var root jsonNode
	if err := json.Unmarshal([]byte(out), &root); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(root.Children) != 1 || root.Children[0].Name != "A" {
		t.Fatalf("root children = %+v", root.Children)
	}
	c := root.Children[0].Children
	if len(c) != 1 || c[0].Name != "C" || c[0].Order != "ZYX" {
		t.Fatalf("A children = %+v", c)
	}
	if c[0].Position[0] != "NaN" {
		t.Errorf("NaN position should be spelled out, got %v", c[0].Position[0])
	}
}

func TestMissingFile(t *testing.T) {
	cmd := newRootCommand("test")
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.yaml")})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for missing file")
	}
}
