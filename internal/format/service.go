package format

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
	serviceExecutorRequiredMessageConstant = "format service requires a tool executor"
	sorterFailureTemplateConstant          = "import sorting failed: %w"
	formatterFailureTemplateConstant       = "formatting failed: %w"
)

// Service sequences the import sorter and formatter invocations.
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

// Run invokes the sorter and then the formatter over the configured paths.
//
// A sorter failure prevents the formatter from running. Style deviations are
// not failures here: both tools rewrite files and only report their own errors.
func (service *Service) Run(executionContext context.Context, configuration Configuration) error {
	sanitizedConfiguration := configuration.Sanitize()

	sorterCommand := buildToolCommand(sanitizedConfiguration.Sorter, sanitizedConfiguration.SorterArguments, sanitizedConfiguration.Paths)
	if sorterError := service.executeToolCommand(executionContext, sorterCommand); sorterError != nil {
		return fmt.Errorf(sorterFailureTemplateConstant, sorterError)
	}

	formatterCommand := buildToolCommand(sanitizedConfiguration.Formatter, sanitizedConfiguration.FormatterArguments, sanitizedConfiguration.Paths)
	if formatterError := service.executeToolCommand(executionContext, formatterCommand); formatterError != nil {
		return fmt.Errorf(formatterFailureTemplateConstant, formatterError)
	}

	return nil
}

func buildToolCommand(toolName string, toolArguments []string, targetPaths []string) execshell.ShellCommand {
	combinedArguments := append([]string{}, toolArguments...)
	combinedArguments = append(combinedArguments, targetPaths...)
	return execshell.ShellCommand{
		Name:    execshell.CommandName(toolName),
		Details: execshell.CommandDetails{Arguments: combinedArguments},
	}
}

func (service *Service) executeToolCommand(executionContext context.Context, command execshell.ShellCommand) error {
	executionResult, executionError := service.executor.Execute(executionContext, command)
	if len(executionResult.StandardOutput) > 0 {
		fmt.Fprint(service.outputWriter, executionResult.StandardOutput)
	}
	if len(executionResult.StandardError) > 0 {
		fmt.Fprint(service.errorWriter, executionResult.StandardError)
	}
	return executionError
}
