package pipeline

import (
	"fmt"

	"github.com/temirov/checkup/internal/format"
	"github.com/temirov/checkup/internal/lint"
	"github.com/temirov/checkup/internal/testsuite"
)

const (
	optionRunnerKeyConstant             = "runner"
	optionRunnerArgumentsKeyConstant    = "runner_arguments"
	optionPathsKeyConstant              = "paths"
	optionInterpreterKeyConstant        = "interpreter"
	optionExamplesKeyConstant           = "examples"
	optionShowExampleOutputKeyConstant  = "show_example_output"
	optionToolKeyConstant               = "tool"
	optionArgumentsKeyConstant          = "arguments"
	optionSorterKeyConstant             = "sorter"
	optionSorterArgumentsKeyConstant    = "sorter_arguments"
	optionFormatterKeyConstant          = "formatter"
	optionFormatterArgumentsKeyConstant = "formatter_arguments"
)

// TaskConfigurations supplies the baseline task settings that step options override.
type TaskConfigurations struct {
	Test   testsuite.Configuration
	Lint   lint.Configuration
	Format format.Configuration
}

// BuildOperations converts the declarative configuration into executable operations.
func BuildOperations(configuration Configuration, taskConfigurations TaskConfigurations) ([]Operation, error) {
	operations := make([]Operation, 0, len(configuration.Steps))
	for stepIndex := range configuration.Steps {
		step := configuration.Steps[stepIndex]
		operation, buildError := buildOperationFromStep(step, taskConfigurations)
		if buildError != nil {
			return nil, buildError
		}
		operations = append(operations, operation)
	}
	return operations, nil
}

func buildOperationFromStep(step StepConfiguration, taskConfigurations TaskConfigurations) (Operation, error) {
	switch step.Task {
	case TaskTypeTest:
		return buildTestOperation(step.Options, taskConfigurations.Test)
	case TaskTypeLint:
		return buildLintOperation(step.Options, taskConfigurations.Lint)
	case TaskTypeFormat:
		return buildFormatOperation(step.Options, taskConfigurations.Format)
	default:
		return nil, fmt.Errorf(configurationUnsupportedTaskTemplateConstant, step.Task)
	}
}

func buildTestOperation(options map[string]any, baseConfiguration testsuite.Configuration) (Operation, error) {
	reader := newOptionReader(options)
	operationConfiguration := baseConfiguration

	runnerValue, runnerExists, runnerError := reader.stringValue(optionRunnerKeyConstant)
	if runnerError != nil {
		return nil, runnerError
	}
	if runnerExists {
		operationConfiguration.Runner = runnerValue
	}

	runnerArguments, runnerArgumentsExist, runnerArgumentsError := reader.stringSliceValue(optionRunnerArgumentsKeyConstant)
	if runnerArgumentsError != nil {
		return nil, runnerArgumentsError
	}
	if runnerArgumentsExist {
		operationConfiguration.RunnerArguments = runnerArguments
	}

	pathValues, pathsExist, pathsError := reader.stringSliceValue(optionPathsKeyConstant)
	if pathsError != nil {
		return nil, pathsError
	}
	if pathsExist {
		operationConfiguration.Paths = pathValues
	}

	interpreterValue, interpreterExists, interpreterError := reader.stringValue(optionInterpreterKeyConstant)
	if interpreterError != nil {
		return nil, interpreterError
	}
	if interpreterExists {
		operationConfiguration.Interpreter = interpreterValue
	}

	exampleValues, examplesExist, examplesError := reader.stringSliceValue(optionExamplesKeyConstant)
	if examplesError != nil {
		return nil, examplesError
	}
	if examplesExist {
		operationConfiguration.Examples = exampleValues
	}

	showExampleOutput, showExampleOutputExists, showExampleOutputError := reader.boolValue(optionShowExampleOutputKeyConstant)
	if showExampleOutputError != nil {
		return nil, showExampleOutputError
	}
	if showExampleOutputExists {
		operationConfiguration.ShowExampleOutput = showExampleOutput
	}

	return &TestOperation{Configuration: operationConfiguration.Sanitize()}, nil
}

func buildLintOperation(options map[string]any, baseConfiguration lint.Configuration) (Operation, error) {
	reader := newOptionReader(options)
	operationConfiguration := baseConfiguration

	toolValue, toolExists, toolError := reader.stringValue(optionToolKeyConstant)
	if toolError != nil {
		return nil, toolError
	}
	if toolExists {
		operationConfiguration.Tool = toolValue
	}

	argumentValues, argumentsExist, argumentsError := reader.stringSliceValue(optionArgumentsKeyConstant)
	if argumentsError != nil {
		return nil, argumentsError
	}
	if argumentsExist {
		operationConfiguration.Arguments = argumentValues
	}

	pathValues, pathsExist, pathsError := reader.stringSliceValue(optionPathsKeyConstant)
	if pathsError != nil {
		return nil, pathsError
	}
	if pathsExist {
		operationConfiguration.Paths = pathValues
	}

	return &LintOperation{Configuration: operationConfiguration.Sanitize()}, nil
}

func buildFormatOperation(options map[string]any, baseConfiguration format.Configuration) (Operation, error) {
	reader := newOptionReader(options)
	operationConfiguration := baseConfiguration

	sorterValue, sorterExists, sorterError := reader.stringValue(optionSorterKeyConstant)
	if sorterError != nil {
		return nil, sorterError
	}
	if sorterExists {
		operationConfiguration.Sorter = sorterValue
	}

	sorterArguments, sorterArgumentsExist, sorterArgumentsError := reader.stringSliceValue(optionSorterArgumentsKeyConstant)
	if sorterArgumentsError != nil {
		return nil, sorterArgumentsError
	}
	if sorterArgumentsExist {
		operationConfiguration.SorterArguments = sorterArguments
	}

	formatterValue, formatterExists, formatterError := reader.stringValue(optionFormatterKeyConstant)
	if formatterError != nil {
		return nil, formatterError
	}
	if formatterExists {
		operationConfiguration.Formatter = formatterValue
	}

	formatterArguments, formatterArgumentsExist, formatterArgumentsError := reader.stringSliceValue(optionFormatterArgumentsKeyConstant)
	if formatterArgumentsError != nil {
		return nil, formatterArgumentsError
	}
	if formatterArgumentsExist {
		operationConfiguration.FormatterArguments = formatterArguments
	}

	pathValues, pathsExist, pathsError := reader.stringSliceValue(optionPathsKeyConstant)
	if pathsError != nil {
		return nil, pathsError
	}
	if pathsExist {
		operationConfiguration.Paths = pathValues
	}

	return &FormatOperation{Configuration: operationConfiguration.Sanitize()}, nil
}
