package pipeline

import (
	"context"

	"github.com/temirov/checkup/internal/format"
	"github.com/temirov/checkup/internal/lint"
	"github.com/temirov/checkup/internal/testsuite"
)

const (
	testOperationNameConstant   = "test"
	lintOperationNameConstant   = "lint"
	formatOperationNameConstant = "format"
)

// TestOperation runs the test suite task as a pipeline step.
type TestOperation struct {
	Configuration testsuite.Configuration
}

// Name identifies the test operation.
func (operation *TestOperation) Name() string {
	return testOperationNameConstant
}

// Execute runs the test suite service with the operation configuration.
func (operation *TestOperation) Execute(executionContext context.Context, environment *Environment) error {
	service, serviceError := testsuite.NewService(environment.Executor, environment.Logger, environment.Output, environment.Errors)
	if serviceError != nil {
		return serviceError
	}
	return service.Run(executionContext, operation.Configuration)
}

// LintOperation runs the static-analysis task as a pipeline step.
type LintOperation struct {
	Configuration lint.Configuration
}

// Name identifies the lint operation.
func (operation *LintOperation) Name() string {
	return lintOperationNameConstant
}

// Execute runs the lint service with the operation configuration.
func (operation *LintOperation) Execute(executionContext context.Context, environment *Environment) error {
	service, serviceError := lint.NewService(environment.Executor, environment.Logger, environment.Output, environment.Errors)
	if serviceError != nil {
		return serviceError
	}
	return service.Run(executionContext, operation.Configuration)
}

// FormatOperation runs the sorter and formatter task as a pipeline step.
type FormatOperation struct {
	Configuration format.Configuration
}

// Name identifies the format operation.
func (operation *FormatOperation) Name() string {
	return formatOperationNameConstant
}

// Execute runs the format service with the operation configuration.
func (operation *FormatOperation) Execute(executionContext context.Context, environment *Environment) error {
	service, serviceError := format.NewService(environment.Executor, environment.Logger, environment.Output, environment.Errors)
	if serviceError != nil {
		return serviceError
	}
	return service.Run(executionContext, operation.Configuration)
}
