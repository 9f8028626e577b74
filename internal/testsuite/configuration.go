package testsuite

import "strings"

const (
	defaultRunnerNameConstant                 = "pytest"
	defaultInterpreterNameConstant            = "python"
	defaultTestsPathConstant                  = "tests"
	defaultSourcePathConstant                 = "src"
	runnerConfigurationKeyConstant            = "runner"
	runnerArgumentsConfigurationKeyConstant   = "runner_arguments"
	pathsConfigurationKeyConstant             = "paths"
	interpreterConfigurationKeyConstant       = "interpreter"
	examplesConfigurationKeyConstant          = "examples"
	showExampleOutputConfigurationKeyConstant = "show_example_output"
	configurationKeySeparatorConstant         = "."
)

// Configuration captures settings for the test task.
type Configuration struct {
	Runner            string   `mapstructure:"runner"`
	RunnerArguments   []string `mapstructure:"runner_arguments"`
	Paths             []string `mapstructure:"paths"`
	Interpreter       string   `mapstructure:"interpreter"`
	Examples          []string `mapstructure:"examples"`
	ShowExampleOutput bool     `mapstructure:"show_example_output"`
}

// DefaultConfiguration provides default test task settings.
func DefaultConfiguration() Configuration {
	return Configuration{
		Runner:            defaultRunnerNameConstant,
		Paths:             []string{defaultTestsPathConstant, defaultSourcePathConstant},
		Interpreter:       defaultInterpreterNameConstant,
		ShowExampleOutput: false,
	}
}

// DefaultConfigurationValues exposes default values keyed for configuration loading.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	defaults := DefaultConfiguration()
	return map[string]any{
		configurationKeyPrefix + configurationKeySeparatorConstant + runnerConfigurationKeyConstant:            defaults.Runner,
		configurationKeyPrefix + configurationKeySeparatorConstant + runnerArgumentsConfigurationKeyConstant:   []string{},
		configurationKeyPrefix + configurationKeySeparatorConstant + pathsConfigurationKeyConstant:             defaults.Paths,
		configurationKeyPrefix + configurationKeySeparatorConstant + interpreterConfigurationKeyConstant:       defaults.Interpreter,
		configurationKeyPrefix + configurationKeySeparatorConstant + examplesConfigurationKeyConstant:          []string{},
		configurationKeyPrefix + configurationKeySeparatorConstant + showExampleOutputConfigurationKeyConstant: defaults.ShowExampleOutput,
	}
}

// Sanitize normalizes configuration values and applies defaults for missing entries.
func (configuration Configuration) Sanitize() Configuration {
	defaults := DefaultConfiguration()
	sanitized := configuration

	sanitized.Runner = strings.TrimSpace(configuration.Runner)
	if len(sanitized.Runner) == 0 {
		sanitized.Runner = defaults.Runner
	}

	sanitized.Interpreter = strings.TrimSpace(configuration.Interpreter)
	if len(sanitized.Interpreter) == 0 {
		sanitized.Interpreter = defaults.Interpreter
	}

	sanitized.RunnerArguments = sanitizeValues(configuration.RunnerArguments)

	sanitized.Paths = sanitizeValues(configuration.Paths)
	if len(sanitized.Paths) == 0 {
		sanitized.Paths = append([]string{}, defaults.Paths...)
	}

	sanitized.Examples = sanitizeValues(configuration.Examples)

	return sanitized
}

func sanitizeValues(raw []string) []string {
	sanitized := make([]string, 0, len(raw))
	for _, candidate := range raw {
		trimmedCandidate := strings.TrimSpace(candidate)
		if len(trimmedCandidate) == 0 {
			continue
		}
		sanitized = append(sanitized, trimmedCandidate)
	}
	return sanitized
}
