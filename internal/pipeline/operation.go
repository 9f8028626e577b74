package pipeline

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/temirov/checkup/internal/tasks"
)

// Operation coordinates a single pipeline step.
type Operation interface {
	Name() string
	Execute(executionContext context.Context, environment *Environment) error
}

// Environment exposes shared dependencies for pipeline operations.
type Environment struct {
	Executor tasks.ToolExecutor
	Logger   *zap.Logger
	Output   io.Writer
	Errors   io.Writer
}
