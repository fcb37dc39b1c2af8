package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// runCommand executes the root command with args and captures its output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), err
}

// writeNetwork drops a TOML network file into a temp dir.
func writeNetwork(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "network.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

// islandsTOML describes two disconnected pipe islands with no node entries.
const islandsTOML = `
[[edge]]
weight = 1.0
u = 0
v = 1

[[edge]]
weight = 2.0
u = 2
v = 3
`
