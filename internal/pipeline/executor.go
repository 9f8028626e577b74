package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/temirov/checkup/internal/tasks"
)

const (
	pipelineExecutionErrorTemplateConstant = "pipeline operation %s failed: %w"
	pipelineExecutorDependenciesMessage    = "pipeline executor requires a tool executor"
)

// Dependencies configures shared collaborators for pipeline execution.
type Dependencies struct {
	Logger   *zap.Logger
	Executor tasks.ToolExecutor
	Output   io.Writer
	Errors   io.Writer
}

// Executor coordinates pipeline operation execution.
type Executor struct {
	operations   []Operation
	dependencies Dependencies
}

// NewExecutor constructs an Executor instance.
func NewExecutor(operations []Operation, dependencies Dependencies) *Executor {
	return &Executor{operations: append([]Operation{}, operations...), dependencies: dependencies}
}

// Execute runs the configured operations in order, stopping at the first failure.
func (executor *Executor) Execute(executionContext context.Context) error {
	if executor.dependencies.Executor == nil {
		return errors.New(pipelineExecutorDependenciesMessage)
	}

	logger := executor.dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	environment := &Environment{
		Executor: executor.dependencies.Executor,
		Logger:   logger,
		Output:   executor.dependencies.Output,
		Errors:   executor.dependencies.Errors,
	}

	for operationIndex := range executor.operations {
		operation := executor.operations[operationIndex]
		if operation == nil {
			continue
		}
		if executeError := operation.Execute(executionContext, environment); executeError != nil {
			return fmt.Errorf(pipelineExecutionErrorTemplateConstant, operation.Name(), executeError)
		}
	}

	return nil
}
