package testsuite

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
	serviceExecutorRequiredMessageConstant = "test service requires a tool executor"
	runnerFailureTemplateConstant          = "test suite failed: %w"
	exampleFailureTemplateConstant         = "example smoke test %s failed: %w"
	exampleStartedMessageConstant          = "running example smoke test"
	logFieldExampleScriptConstant          = "script"
	logFieldInterpreterConstant            = "interpreter"
)

// Service coordinates the test runner invocation and example smoke tests.
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

// Run executes the test runner over the configured paths and then every example script.
//
// The first non-zero exit aborts the task; remaining examples never run.
func (service *Service) Run(executionContext context.Context, configuration Configuration) error {
	sanitizedConfiguration := configuration.Sanitize()

	if runnerError := service.runTestRunner(executionContext, sanitizedConfiguration); runnerError != nil {
		return runnerError
	}

	for _, exampleScript := range sanitizedConfiguration.Examples {
		if exampleError := service.runExampleScript(executionContext, sanitizedConfiguration, exampleScript); exampleError != nil {
			return exampleError
		}
	}

	return nil
}

func (service *Service) runTestRunner(executionContext context.Context, configuration Configuration) error {
	runnerArguments := append([]string{}, configuration.RunnerArguments...)
	runnerArguments = append(runnerArguments, configuration.Paths...)

	runnerCommand := execshell.ShellCommand{
		Name:    execshell.CommandName(configuration.Runner),
		Details: execshell.CommandDetails{Arguments: runnerArguments},
	}

	executionResult, executionError := service.executor.Execute(executionContext, runnerCommand)
	service.forwardCapturedOutput(executionResult)
	if executionError != nil {
		return fmt.Errorf(runnerFailureTemplateConstant, executionError)
	}

	return nil
}

func (service *Service) runExampleScript(executionContext context.Context, configuration Configuration, exampleScript string) error {
	service.logger.Debug(
		exampleStartedMessageConstant,
		zap.String(logFieldExampleScriptConstant, exampleScript),
		zap.String(logFieldInterpreterConstant, configuration.Interpreter),
	)

	exampleCommand := execshell.ShellCommand{
		Name:    execshell.CommandName(configuration.Interpreter),
		Details: execshell.CommandDetails{Arguments: []string{exampleScript}},
	}

	executionResult, executionError := service.executor.Execute(executionContext, exampleCommand)
	if configuration.ShowExampleOutput {
		service.forwardCapturedOutput(executionResult)
	} else if executionError != nil {
		// Output stays suppressed on the happy path; failures surface their diagnostics.
		service.forwardCapturedStandardError(executionResult)
	}
	if executionError != nil {
		return fmt.Errorf(exampleFailureTemplateConstant, exampleScript, executionError)
	}

	return nil
}

func (service *Service) forwardCapturedOutput(executionResult execshell.ExecutionResult) {
	if len(executionResult.StandardOutput) > 0 {
		fmt.Fprint(service.outputWriter, executionResult.StandardOutput)
	}
	service.forwardCapturedStandardError(executionResult)
}

func (service *Service) forwardCapturedStandardError(executionResult execshell.ExecutionResult) {
	if len(executionResult.StandardError) > 0 {
		fmt.Fprint(service.errorWriter, executionResult.StandardError)
	}
}
