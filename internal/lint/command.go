package lint

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/checkup/internal/tasks"
	"github.com/temirov/checkup/internal/utils"
)

const (
	commandUseConstant              = "lint"
	commandShortDescriptionConstant = "Run static analysis over project sources"
	commandLongDescriptionConstant  = "lint invokes the configured static-analysis tool over the configured paths and fails when violations are reported."
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the lint cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	Executor                     tasks.ToolExecutor
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() Configuration
}

// Build constructs the cobra command for the lint task.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	logger := resolveLogger(builder.LoggerProvider)
	executor, executorError := tasks.ResolveToolExecutor(builder.Executor, logger, builder.humanReadableLoggingEnabled())
	if executorError != nil {
		return executorError
	}

	service, serviceError := NewService(
		executor,
		logger,
		utils.NewFlushingWriter(command.OutOrStdout()),
		utils.NewFlushingWriter(command.ErrOrStderr()),
	)
	if serviceError != nil {
		return serviceError
	}

	return service.Run(command.Context(), configuration)
}

func (builder *CommandBuilder) resolveConfiguration() Configuration {
	if builder.ConfigurationProvider == nil {
		return DefaultConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) humanReadableLoggingEnabled() bool {
	if builder.HumanReadableLoggingProvider == nil {
		return false
	}
	return builder.HumanReadableLoggingProvider()
}

func resolveLogger(provider LoggerProvider) *zap.Logger {
	if provider == nil {
		return zap.NewNop()
	}
	logger := provider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
