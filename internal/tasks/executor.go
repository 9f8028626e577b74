package tasks

import (
	"context"

	"go.uber.org/zap"

	"github.com/temirov/checkup/internal/execshell"
	"github.com/temirov/checkup/internal/ui"
)

// ToolExecutor runs external tool commands on behalf of task services.
type ToolExecutor interface {
	Execute(executionContext context.Context, command execshell.ShellCommand) (execshell.ExecutionResult, error)
}

// ResolveToolExecutor returns the provided executor or constructs a shell-backed default.
//
// With human-readable logging enabled the executor reports lifecycle events
// through the console observer instead of the structured logger so command
// feedback is not duplicated.
func ResolveToolExecutor(existing ToolExecutor, logger *zap.Logger, humanReadableLogging bool) (ToolExecutor, error) {
	if existing != nil {
		return existing, nil
	}

	commandRunner := execshell.NewOSCommandRunner()
	if humanReadableLogging {
		consoleObserver := ui.NewConsoleCommandEventLogger(logger)
		return execshell.NewShellExecutorWithObserver(zap.NewNop(), commandRunner, consoleObserver)
	}

	return execshell.NewShellExecutor(logger, commandRunner)
}
