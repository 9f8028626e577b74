package tasks_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/checkup/internal/execshell"
	"github.com/temirov/checkup/internal/tasks"
)

type stubToolExecutor struct{}

func (executor *stubToolExecutor) Execute(executionContext context.Context, command execshell.ShellCommand) (execshell.ExecutionResult, error) {
	return execshell.ExecutionResult{}, nil
}

func TestResolveToolExecutorReturnsExistingExecutor(testInstance *testing.T) {
	existingExecutor := &stubToolExecutor{}

	resolvedExecutor, resolveError := tasks.ResolveToolExecutor(existingExecutor, zap.NewNop(), false)
	require.NoError(testInstance, resolveError)
	require.Same(testInstance, existingExecutor, resolvedExecutor)
}

func TestResolveToolExecutorConstructsShellBackedDefault(testInstance *testing.T) {
	testCases := []struct {
		name                 string
		humanReadableLogging bool
	}{
		{name: "structured_logging", humanReadableLogging: false},
		{name: "console_logging", humanReadableLogging: true},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			resolvedExecutor, resolveError := tasks.ResolveToolExecutor(nil, zap.NewNop(), testCase.humanReadableLogging)
			require.NoError(testInstance, resolveError)
			require.NotNil(testInstance, resolvedExecutor)
		})
	}
}
