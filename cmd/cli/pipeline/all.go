package pipeline

import (
	"github.com/spf13/cobra"

	"github.com/temirov/checkup/internal/pipeline"
	"github.com/temirov/checkup/internal/tasks"
	"github.com/temirov/checkup/internal/utils"
)

const (
	allCommandUseConstant              = "all"
	allCommandShortDescriptionConstant = "Run the test suite and then static analysis"
	allCommandLongDescriptionConstant  = "all chains the test and lint tasks; a test failure aborts the run before static analysis starts."
)

// AllCommandBuilder assembles the aggregate all command.
type AllCommandBuilder struct {
	LoggerProvider               LoggerProvider
	Executor                     tasks.ToolExecutor
	HumanReadableLoggingProvider func() bool
	TaskConfigurationsProvider   func() pipeline.TaskConfigurations
}

// Build constructs the all command.
func (builder *AllCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   allCommandUseConstant,
		Short: allCommandShortDescriptionConstant,
		Long:  allCommandLongDescriptionConstant,
		RunE:  builder.run,
	}

	return command, nil
}

func (builder *AllCommandBuilder) run(command *cobra.Command, arguments []string) error {
	taskConfigurations := builder.resolveTaskConfigurations()

	operations := []pipeline.Operation{
		&pipeline.TestOperation{Configuration: taskConfigurations.Test.Sanitize()},
		&pipeline.LintOperation{Configuration: taskConfigurations.Lint.Sanitize()},
	}

	logger := resolveLogger(builder.LoggerProvider)
	humanReadableLogging := false
	if builder.HumanReadableLoggingProvider != nil {
		humanReadableLogging = builder.HumanReadableLoggingProvider()
	}
	toolExecutor, executorError := tasks.ResolveToolExecutor(builder.Executor, logger, humanReadableLogging)
	if executorError != nil {
		return executorError
	}

	pipelineDependencies := pipeline.Dependencies{
		Logger:   logger,
		Executor: toolExecutor,
		Output:   utils.NewFlushingWriter(command.OutOrStdout()),
		Errors:   utils.NewFlushingWriter(command.ErrOrStderr()),
	}

	executor := pipeline.NewExecutor(operations, pipelineDependencies)
	return executor.Execute(command.Context())
}

func (builder *AllCommandBuilder) resolveTaskConfigurations() pipeline.TaskConfigurations {
	if builder.TaskConfigurationsProvider == nil {
		return pipeline.TaskConfigurations{}
	}
	return builder.TaskConfigurationsProvider()
}
