package lint

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/temirov/checkup/internal/execshell"
	"github.com/temirov/checkup/internal/tasks"
)

const (
	serviceExecutorRequiredMessageConstant = "lint service requires a tool executor"
	lintFailureTemplateConstant            = "static analysis failed: %w"
)

// Service coordinates the static-analysis tool invocation.
type Service struct {
	executor     tasks.ToolExecutor
	logger       *zap.Logger
	outputWriter io.Writer
	errorWriter  io.Writer
}

// NewService constructs a Service using the provided dependencies.
func NewService(executor tasks.ToolExecutor, logger *zap.Logger, outputWriter io.Writer, errorWriter io.Writer) (*Service, error) {
	if executor == nil {
		return nil, errors.New(serviceExecutorRequiredMessageConstant)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if outputWriter == nil {
		outputWriter = io.Discard
	}
	if errorWriter == nil {
		errorWriter = io.Discard
	}

	return &Service{executor: executor, logger: logger, outputWriter: outputWriter, errorWriter: errorWriter}, nil
}

// Run invokes the analysis tool once over the configured paths.
//
// A non-zero exit means violations were found and surfaces as an error with
// the tool's diagnostics forwarded verbatim.
func (service *Service) Run(executionContext context.Context, configuration Configuration) error {
	sanitizedConfiguration := configuration.Sanitize()

	toolArguments := append([]string{}, sanitizedConfiguration.Arguments...)
	toolArguments = append(toolArguments, sanitizedConfiguration.Paths...)

	lintCommand := execshell.ShellCommand{
		Name:    execshell.CommandName(sanitizedConfiguration.Tool),
		Details: execshell.CommandDetails{Arguments: toolArguments},
	}

	executionResult, executionError := service.executor.Execute(executionContext, lintCommand)
	if len(executionResult.StandardOutput) > 0 {
		fmt.Fprint(service.outputWriter, executionResult.StandardOutput)
	}
	if len(executionResult.StandardError) > 0 {
		fmt.Fprint(service.errorWriter, executionResult.StandardError)
	}
	if executionError != nil {
		return fmt.Errorf(lintFailureTemplateConstant, executionError)
	}

	return nil
}
