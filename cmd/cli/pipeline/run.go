package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/temirov/checkup/internal/pipeline"
	"github.com/temirov/checkup/internal/tasks"
	"github.com/temirov/checkup/internal/utils"
)

const (
	commandUseConstant                       = "pipeline [file]"
	commandShortDescriptionConstant          = "Run a pipeline configuration file"
	commandLongDescriptionConstant           = "pipeline executes the task sequence declared in a YAML or JSON file, stopping at the first failing step."
	configurationPathRequiredMessageConstant = "pipeline file required; provide a positional argument or configure tasks.pipeline.file"
	loadConfigurationErrorTemplateConstant   = "unable to load pipeline configuration: %w"
	buildOperationsErrorTemplateConstant     = "unable to build pipeline operations: %w"
)

// CommandBuilder assembles the pipeline command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	Executor                     tasks.ToolExecutor
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
	TaskConfigurationsProvider   func() pipeline.TaskConfigurations
}

// Build constructs the pipeline command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.MaximumNArgs(1),
		RunE:  builder.run,
	}

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configurationPathCandidate := ""
	if len(arguments) > 0 {
		configurationPathCandidate = strings.TrimSpace(arguments[0])
	} else {
		configurationPathCandidate = builder.resolveConfiguration().File
	}

	if len(configurationPathCandidate) == 0 {
		if helpError := displayCommandHelp(command); helpError != nil {
			return helpError
		}
		return errors.New(configurationPathRequiredMessageConstant)
	}

	pipelineConfiguration, configurationError := pipeline.LoadConfiguration(configurationPathCandidate)
	if configurationError != nil {
		return fmt.Errorf(loadConfigurationErrorTemplateConstant, configurationError)
	}

	operations, operationsError := pipeline.BuildOperations(pipelineConfiguration, builder.resolveTaskConfigurations())
	if operationsError != nil {
		return fmt.Errorf(buildOperationsErrorTemplateConstant, operationsError)
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

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) resolveTaskConfigurations() pipeline.TaskConfigurations {
	if builder.TaskConfigurationsProvider == nil {
		return pipeline.TaskConfigurations{}
	}
	return builder.TaskConfigurationsProvider()
}
