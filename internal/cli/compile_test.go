package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeQueryFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestCompile_TextOutput(t *testing.T) {
	dir := t.TempDir()
	path := writeQueryFile(t, dir, "query.json", `["=", "type", "Class"]`)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text", Dialect: "resource-v2"}
	cmd := NewCompileCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "catalog_resources.type = ?")
}

func TestCompile_JSONOutput(t *testing.T) {
	dir := t.TempDir()
	path := writeQueryFile(t, dir, "query.yaml", `["=", "name", "ipaddress"]`)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json", Dialect: "fact-v2"}
	cmd := NewCompileCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.TraceID)
}

func TestCompile_UnqueryableField(t *testing.T) {
	dir := t.TempDir()
	path := writeQueryFile(t, dir, "query.json", `["=", "bogus", "x"]`)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text", Dialect: "resource-v2"}
	cmd := NewCompileCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "UnqueryableField")
}

func TestCompile_MissingFile(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text", Dialect: "resource-v2"}
	cmd := NewCompileCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.json")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "E_LOAD")
}

func TestCompile_MalformedQueryDocument(t *testing.T) {
	dir := t.TempDir()
	path := writeQueryFile(t, dir, "query.json", `[]`)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text", Dialect: "resource-v2"}
	cmd := NewCompileCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCompile_FactDialect(t *testing.T) {
	dir := t.TempDir()
	path := writeQueryFile(t, dir, "query.json", `[">", "value", "0.3"]`)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text", Dialect: "fact-v2"}
	cmd := NewCompileCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "CAST(certname_facts.value AS FLOAT)")
}
