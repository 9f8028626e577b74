package lint_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/checkup/internal/execshell"
	"github.com/temirov/checkup/internal/lint"
)

func TestCommandRunsConfiguredTool(testInstance *testing.T) {
	executor := &stubToolExecutor{}
	builder := lint.CommandBuilder{
		LoggerProvider: func() *zap.Logger { return zap.NewNop() },
		Executor:       executor,
		ConfigurationProvider: func() lint.Configuration {
			return lint.Configuration{
				Tool:      "ruff",
				Arguments: []string{"check"},
				Paths:     []string{"src"},
			}
		},
	}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	command.SetOut(&bytes.Buffer{})
	command.SetErr(&bytes.Buffer{})
	command.SetArgs([]string{})

	executionError := command.Execute()
	require.NoError(testInstance, executionError)

	require.Len(testInstance, executor.recordedCommands, 1)
	require.Equal(testInstance, execshell.CommandRuff, executor.recordedCommands[0].Name)
	require.Equal(testInstance, []string{"check", "src"}, executor.recordedCommands[0].Details.Arguments)
}

func TestCommandReportsViolationsAsErrors(testInstance *testing.T) {
	failingCommand := execshell.ShellCommand{Name: execshell.CommandRuff}
	failingResult := execshell.ExecutionResult{ExitCode: 1, StandardOutput: "src/app.py:1:1: F401 unused import\n"}
	executor := &stubToolExecutor{
		executionResult: failingResult,
		executionError:  execshell.CommandFailedError{Command: failingCommand, Result: failingResult},
	}
	builder := lint.CommandBuilder{
		LoggerProvider: func() *zap.Logger { return zap.NewNop() },
		Executor:       executor,
	}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	outputBuffer := &bytes.Buffer{}
	command.SetOut(outputBuffer)
	command.SetErr(&bytes.Buffer{})
	command.SetArgs([]string{})

	executionError := command.Execute()
	require.Error(testInstance, executionError)
	require.ErrorContains(testInstance, executionError, "static analysis failed")
	require.Contains(testInstance, outputBuffer.String(), "F401")
}
