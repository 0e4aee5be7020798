package execshell_test

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/gitid/internal/execshell"
)

func requireGitExecutable(testInstance *testing.T) {
	testInstance.Helper()
	if _, lookupError := exec.LookPath(string(execshell.CommandGit)); lookupError != nil {
		testInstance.Skip("git executable not available")
	}
}

func TestOSCommandRunnerReportsExitCodeWithoutError(testInstance *testing.T) {
	requireGitExecutable(testInstance)

	workingDirectory := testInstance.TempDir()
	runner := execshell.NewOSCommandRunner()
	executionResult, runError := runner.Run(context.Background(), execshell.ShellCommand{
		Name: execshell.CommandGit,
		Details: execshell.CommandDetails{
			Arguments:            []string{"rev-parse", "--abbrev-ref", "HEAD"},
			WorkingDirectory:     workingDirectory,
			EnvironmentVariables: map[string]string{"GIT_CEILING_DIRECTORIES": filepath.Dir(workingDirectory)},
		},
	})

	require.NoError(testInstance, runError)
	require.NotZero(testInstance, executionResult.ExitCode)
	require.NotEmpty(testInstance, executionResult.StandardError)
}

func TestOSCommandRunnerCapturesStandardOutput(testInstance *testing.T) {
	requireGitExecutable(testInstance)

	runner := execshell.NewOSCommandRunner()
	executionResult, runError := runner.Run(context.Background(), execshell.ShellCommand{
		Name:    execshell.CommandGit,
		Details: execshell.CommandDetails{Arguments: []string{"--version"}},
	})

	require.NoError(testInstance, runError)
	require.Zero(testInstance, executionResult.ExitCode)
	require.Contains(testInstance, executionResult.StandardOutput, "git version")
}

func TestOSCommandRunnerReturnsErrorForMissingExecutable(testInstance *testing.T) {
	runner := execshell.NewOSCommandRunner()
	_, runError := runner.Run(context.Background(), execshell.ShellCommand{
		Name: execshell.CommandName("gitid-missing-executable"),
	})

	require.Error(testInstance, runError)
}
