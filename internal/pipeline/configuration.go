package pipeline

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	configurationLoadErrorTemplateConstant       = "failed to load pipeline configuration: %w"
	configurationParseErrorTemplateConstant      = "failed to parse pipeline configuration: %w"
	configurationPathRequiredMessageConstant     = "pipeline configuration path must be provided"
	configurationEmptyStepsMessageConstant       = "pipeline configuration must define at least one step"
	configurationTaskMissingMessageConstant      = "pipeline step missing task name"
	configurationUnsupportedTaskTemplateConstant = "unsupported pipeline task: %s"
)

// TaskType identifies supported pipeline tasks.
type TaskType string

// Supported pipeline tasks.
const (
	TaskTypeTest   TaskType = TaskType(testOperationNameConstant)
	TaskTypeLint   TaskType = TaskType(lintOperationNameConstant)
	TaskTypeFormat TaskType = TaskType(formatOperationNameConstant)
)

// Configuration describes the ordered pipeline steps loaded from YAML or JSON.
type Configuration struct {
	Steps []StepConfiguration `yaml:"steps" json:"steps"`
}

// StepConfiguration associates a task type with declarative option overrides.
type StepConfiguration struct {
	Task    TaskType       `yaml:"task" json:"task"`
	Options map[string]any `yaml:"with" json:"with"`
}

// LoadConfiguration reads the pipeline definition from disk and performs basic validation.
func LoadConfiguration(filePath string) (Configuration, error) {
	trimmedPath := strings.TrimSpace(filePath)
	if len(trimmedPath) == 0 {
		return Configuration{}, errors.New(configurationPathRequiredMessageConstant)
	}

	contentBytes, readError := os.ReadFile(trimmedPath)
	if readError != nil {
		return Configuration{}, fmt.Errorf(configurationLoadErrorTemplateConstant, readError)
	}

	var configuration Configuration
	if unmarshalError := yaml.Unmarshal(contentBytes, &configuration); unmarshalError != nil {
		nestedConfiguration, nestedError := parseNestedConfiguration(contentBytes)
		if nestedError != nil {
			return Configuration{}, fmt.Errorf(configurationParseErrorTemplateConstant, unmarshalError)
		}
		configuration = nestedConfiguration
	} else if len(configuration.Steps) == 0 {
		if nestedConfiguration, nestedError := parseNestedConfiguration(contentBytes); nestedError == nil {
			configuration = nestedConfiguration
		}
	}

	if len(configuration.Steps) == 0 {
		return Configuration{}, errors.New(configurationEmptyStepsMessageConstant)
	}

	for stepIndex := range configuration.Steps {
		trimmedTask := strings.TrimSpace(string(configuration.Steps[stepIndex].Task))
		if len(trimmedTask) == 0 {
			return Configuration{}, errors.New(configurationTaskMissingMessageConstant)
		}
		configuration.Steps[stepIndex].Task = TaskType(strings.ToLower(trimmedTask))
	}

	return configuration, nil
}

// parseNestedConfiguration accepts documents that wrap the steps under a pipeline key.
func parseNestedConfiguration(contentBytes []byte) (Configuration, error) {
	var wrapper struct {
		Pipeline Configuration `yaml:"pipeline" json:"pipeline"`
	}
	if unmarshalError := yaml.Unmarshal(contentBytes, &wrapper); unmarshalError != nil {
		return Configuration{}, unmarshalError
	}
	if len(wrapper.Pipeline.Steps) == 0 {
		return Configuration{}, errors.New(configurationEmptyStepsMessageConstant)
	}
	return wrapper.Pipeline, nil
}
