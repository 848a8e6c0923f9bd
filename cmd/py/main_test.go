package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pylaunch/pylaunch/pkg/launcher"
)

// mockExecutor records the handoff instead of replacing the process.
type mockExecutor struct {
	path string
	args []string
	err  error
}

func (m *mockExecutor) Exec(path string, args []string) error {
	m.path = path
	m.args = args
	return m.err
}

func executeCommand(t *testing.T, args ...string) (string, *mockExecutor, error) {
	t.Helper()

	mock := &mockExecutor{}
	original := executor
	executor = mock
	t.Cleanup(func() { executor = original })

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), mock, err
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Error(err)
		}
	})
}

// installInterpreters points PATH at a temp directory holding fake
// interpreter executables and clears the pipeline's other inputs.
func installInterpreters(t *testing.T, names ...string) string {
	t.Helper()

	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte{}, 0o755))
	}
	t.Setenv("PATH", dir)
	t.Setenv("VIRTUAL_ENV", "")
	t.Setenv("PY_PYTHON", "")
	t.Setenv("PY_PYTHON3", "")
	chdir(t, t.TempDir())
	return dir
}

func TestRun_Help(t *testing.T) {
	dir := installInterpreters(t, "python3.12")

	out, mock, err := executeCommand(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "Python Launcher for Unix")
	assert.Contains(t, out, "PY_PYTHON")

	// The interpreter's help is appended by exec'ing it with -h.
	assert.Equal(t, filepath.Join(dir, "python3.12"), mock.path)
	assert.Equal(t, []string{"-h"}, mock.args)
}

func TestRun_List(t *testing.T) {
	dir := installInterpreters(t, "python3.6", "python3.12")

	out, _, err := executeCommand(t, "--list")
	require.NoError(t, err)

	assert.Contains(t, out, "3.12")
	assert.Contains(t, out, "3.6")
	assert.Contains(t, out, filepath.Join(dir, "python3.12"))
	assert.Contains(t, out, "│")
}

func TestRun_ListNothingInstalled(t *testing.T) {
	installInterpreters(t)

	_, _, err := executeCommand(t, "--list")

	var notFound *launcher.NoExecutableFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestRun_Version(t *testing.T) {
	installInterpreters(t, "python3.12")

	out, _, err := executeCommand(t, "--version")
	require.NoError(t, err)

	assert.Equal(t, "py "+launcher.Version+"\n", out)
}

func TestRun_Execute(t *testing.T) {
	dir := installInterpreters(t, "python3.6", "python3.12")

	_, mock, err := executeCommand(t, "-3.6", "script.py", "--flag")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "python3.6"), mock.path)
	assert.Equal(t, []string{"script.py", "--flag"}, mock.args)
}

func TestRun_ExecutePassthrough(t *testing.T) {
	dir := installInterpreters(t, "python3.12")

	_, mock, err := executeCommand(t, "-c", "print('hi')")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "python3.12"), mock.path)
	assert.Equal(t, []string{"-c", "print('hi')"}, mock.args)
}

func TestRun_IllegalArgument(t *testing.T) {
	installInterpreters(t, "python3.12")

	_, _, err := executeCommand(t, "--list", "extra")

	var illegal *launcher.IllegalArgumentError
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, "--list", illegal.Flag)
}
