package lint_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/checkup/internal/execshell"
	"github.com/temirov/checkup/internal/lint"
)

type stubToolExecutor struct {
	executionResult  execshell.ExecutionResult
	executionError   error
	recordedCommands []execshell.ShellCommand
}

func (executor *stubToolExecutor) Execute(executionContext context.Context, command execshell.ShellCommand) (execshell.ExecutionResult, error) {
	executor.recordedCommands = append(executor.recordedCommands, command)
	return executor.executionResult, executor.executionError
}

func TestServiceRunInvokesToolWithArgumentsAndPaths(testInstance *testing.T) {
	executor := &stubToolExecutor{}

	service, creationError := lint.NewService(executor, zap.NewNop(), &bytes.Buffer{}, &bytes.Buffer{})
	require.NoError(testInstance, creationError)

	configuration := lint.Configuration{
		Tool:      "ruff",
		Arguments: []string{"check"},
		Paths:     []string{"src", "tests"},
	}

	runError := service.Run(context.Background(), configuration)
	require.NoError(testInstance, runError)

	require.Len(testInstance, executor.recordedCommands, 1)
	recordedCommand := executor.recordedCommands[0]
	require.Equal(testInstance, execshell.CommandRuff, recordedCommand.Name)
	require.Equal(testInstance, []string{"check", "src", "tests"}, recordedCommand.Details.Arguments)
}

func TestServiceRunForwardsDiagnosticsAndReportsViolations(testInstance *testing.T) {
	command := execshell.ShellCommand{Name: execshell.CommandRuff}
	result := execshell.ExecutionResult{
		StandardOutput: "src/app.py:1:1: F401 unused import\n",
		StandardError:  "Found 1 error.\n",
		ExitCode:       1,
	}
	executor := &stubToolExecutor{
		executionResult: result,
		executionError:  execshell.CommandFailedError{Command: command, Result: result},
	}

	outputBuffer := &bytes.Buffer{}
	errorBuffer := &bytes.Buffer{}
	service, creationError := lint.NewService(executor, zap.NewNop(), outputBuffer, errorBuffer)
	require.NoError(testInstance, creationError)

	runError := service.Run(context.Background(), lint.Configuration{})
	require.Error(testInstance, runError)
	require.ErrorContains(testInstance, runError, "static analysis failed")

	require.Equal(testInstance, result.StandardOutput, outputBuffer.String())
	require.Equal(testInstance, result.StandardError, errorBuffer.String())
}

func TestServiceRunAppliesConfigurationDefaults(testInstance *testing.T) {
	executor := &stubToolExecutor{}

	service, creationError := lint.NewService(executor, zap.NewNop(), &bytes.Buffer{}, &bytes.Buffer{})
	require.NoError(testInstance, creationError)

	runError := service.Run(context.Background(), lint.Configuration{})
	require.NoError(testInstance, runError)

	require.Len(testInstance, executor.recordedCommands, 1)
	recordedCommand := executor.recordedCommands[0]
	require.Equal(testInstance, execshell.CommandRuff, recordedCommand.Name)
	require.Equal(testInstance, []string{"check", "src"}, recordedCommand.Details.Arguments)
}

func TestNewServiceRequiresExecutor(testInstance *testing.T) {
	service, creationError := lint.NewService(nil, zap.NewNop(), &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(testInstance, creationError)
	require.Nil(testInstance, service)
}
