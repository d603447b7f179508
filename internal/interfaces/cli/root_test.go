package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/protograph/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/protograph/pkg/errors"
)

// executeCommand runs the root command with args and captures its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCommand()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestRootCommand_Help(t *testing.T) {
	out, err := executeCommand(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "protograph")
	assert.Contains(t, out, "build")
}

func TestRootCommand_Version(t *testing.T) {
	out, err := executeCommand(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
	assert.Contains(t, out, GitCommit)
}

func TestRootCommand_UnknownSubcommand(t *testing.T) {
	_, err := executeCommand(t, "frobnicate")
	assert.Error(t, err)
}

func TestGetCLIContext_Uninitialized(t *testing.T) {
	cmd := &cobra.Command{Use: "bare"}
	cmd.SetContext(context.Background())

	_, err := GetCLIContext(cmd)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInternal))
}

func TestPersistentPreRun_SetsDefaultLogger(t *testing.T) {
	orig := logging.Default()
	defer logging.SetDefault(orig)

	sentinel := logging.NewNopLogger()
	logging.SetDefault(sentinel)

	// Any real command run passes through persistentPreRun, which installs
	// the configured logger as the process default.
	dir := t.TempDir()
	_, err := executeCommand(t, "build", "--glob", filepath.Join(dir, "*.pdb"))
	require.NoError(t, err)

	assert.NotEqual(t, sentinel, logging.Default())
}

func TestInitConfig_ExplicitPathMissing(t *testing.T) {
	_, err := initConfig(&RootOptions{ConfigPath: "/nonexistent/protograph.yaml"})
	assert.Error(t, err)
}

func TestInitLogger_VerboseForcesDebug(t *testing.T) {
	cfg, err := initConfig(&RootOptions{})
	require.NoError(t, err)

	logger, err := initLogger(cfg, &RootOptions{Verbose: true})
	require.NoError(t, err)
	assert.NotNil(t, logger)
}
