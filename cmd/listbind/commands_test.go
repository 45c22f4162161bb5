package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/listbind/internal/config"
	"github.com/muurk/listbind/internal/logging"
	"github.com/muurk/listbind/internal/path"
	"github.com/muurk/listbind/internal/screen"
)

const peopleYAML = `version: 1
status_path: inner.status
value_path: outer.name
capacity: 5
outer:
  - {name: Alice}
  - {name: Bob}
  - {name: Carol}
inner:
  - {status: ""}
  - {status: "*"}
`

// execute runs the root command with args against an isolated config file
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.PathEnvVar, filepath.Join(t.TempDir(), "config.yaml"))
	t.Setenv(logging.LogLevelEnvVar, "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeDoc(t *testing.T) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "people.yaml")
	require.NoError(t, os.WriteFile(file, []byte(peopleYAML), 0644))
	return file
}

func statuses(t *testing.T, file string) []any {
	t.Helper()
	doc, err := screen.Load(file)
	require.NoError(t, err)
	status := path.New("status")
	out := make([]any, len(doc.Inner))
	for i, row := range doc.Inner {
		out[i] = status.Get(row)
	}
	return out
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "listbind "), "unexpected output %q", out)
}

func TestShowCompact(t *testing.T) {
	file := writeDoc(t)

	out, err := execute(t, "show", file, "--format", "compact")
	require.NoError(t, err)

	want := "  0    Alice\n  1  ✓ Bob\n  2    Carol\n"
	assert.Equal(t, want, out)

	// show never writes
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, peopleYAML, string(data))
}

func TestSelectSavesSelection(t *testing.T) {
	file := writeDoc(t)

	_, err := execute(t, "select", file, "2")
	require.NoError(t, err)

	assert.Equal(t, []any{"", "", "*"}, statuses(t, file))
}

func TestSelectRejectsOutOfRange(t *testing.T) {
	file := writeDoc(t)

	_, err := execute(t, "select", file, "5")
	require.Error(t, err)
	assert.True(t, screen.IsRangeError(err))
}

func TestSelectedListsRows(t *testing.T) {
	file := writeDoc(t)

	out, err := execute(t, "selected", file)
	require.NoError(t, err)
	assert.Equal(t, "Bob\n", out)
}

func TestSetValueInsertsRow(t *testing.T) {
	file := writeDoc(t)

	_, err := execute(t, "set-value", file, "Dave")
	require.NoError(t, err)

	doc, err := screen.Load(file)
	require.NoError(t, err)
	require.Len(t, doc.Outer, 4)
	assert.Equal(t, "Dave", path.New("name").Get(doc.Outer[3]))
	assert.Equal(t, []any{" ", "", " ", "*"}, statuses(t, file))
}

func TestSetThenGet(t *testing.T) {
	file := writeDoc(t)

	_, err := execute(t, "set", file, "inner.0.status", "H")
	require.NoError(t, err)

	out, err := execute(t, "get", file, "inner.0.status")
	require.NoError(t, err)
	assert.Equal(t, "H\n", out)
}

func TestNewCreatesDocument(t *testing.T) {
	file := filepath.Join(t.TempDir(), "tags.yaml")

	_, err := execute(t, "new", file, "--multi")
	require.NoError(t, err)

	doc, err := screen.Load(file)
	require.NoError(t, err)
	assert.True(t, doc.Multi)
	assert.Equal(t, "inner.status", doc.StatusPath)
	assert.Empty(t, doc.Outer)
}
