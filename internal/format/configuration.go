package format

import "strings"

const (
	defaultSorterNameConstant                  = "isort"
	defaultFormatterNameConstant               = "black"
	defaultSourcePathConstant                  = "src"
	defaultTestsPathConstant                   = "tests"
	defaultExamplesPathConstant                = "examples"
	sorterConfigurationKeyConstant             = "sorter"
	sorterArgumentsConfigurationKeyConstant    = "sorter_arguments"
	formatterConfigurationKeyConstant          = "formatter"
	formatterArgumentsConfigurationKeyConstant = "formatter_arguments"
	pathsConfigurationKeyConstant              = "paths"
	configurationKeySeparatorConstant          = "."
)

// Configuration captures settings for the format task.
type Configuration struct {
	Sorter             string   `mapstructure:"sorter"`
	SorterArguments    []string `mapstructure:"sorter_arguments"`
	Formatter          string   `mapstructure:"formatter"`
	FormatterArguments []string `mapstructure:"formatter_arguments"`
	Paths              []string `mapstructure:"paths"`
}

// DefaultConfiguration provides default format task settings.
func DefaultConfiguration() Configuration {
	return Configuration{
		Sorter:    defaultSorterNameConstant,
		Formatter: defaultFormatterNameConstant,
		Paths:     []string{defaultSourcePathConstant, defaultTestsPathConstant, defaultExamplesPathConstant},
	}
}

// DefaultConfigurationValues exposes default values keyed for configuration loading.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	defaults := DefaultConfiguration()
	return map[string]any{
		configurationKeyPrefix + configurationKeySeparatorConstant + sorterConfigurationKeyConstant:             defaults.Sorter,
		configurationKeyPrefix + configurationKeySeparatorConstant + sorterArgumentsConfigurationKeyConstant:    []string{},
		configurationKeyPrefix + configurationKeySeparatorConstant + formatterConfigurationKeyConstant:          defaults.Formatter,
		configurationKeyPrefix + configurationKeySeparatorConstant + formatterArgumentsConfigurationKeyConstant: []string{},
		configurationKeyPrefix + configurationKeySeparatorConstant + pathsConfigurationKeyConstant:              defaults.Paths,
	}
}

// Sanitize normalizes configuration values and applies defaults for missing entries.
func (configuration Configuration) Sanitize() Configuration {
	defaults := DefaultConfiguration()
	sanitized := configuration

	sanitized.Sorter = strings.TrimSpace(configuration.Sorter)
	if len(sanitized.Sorter) == 0 {
		sanitized.Sorter = defaults.Sorter
	}

	sanitized.Formatter = strings.TrimSpace(configuration.Formatter)
	if len(sanitized.Formatter) == 0 {
		sanitized.Formatter = defaults.Formatter
	}

	sanitized.SorterArguments = sanitizeValues(configuration.SorterArguments)
	sanitized.FormatterArguments = sanitizeValues(configuration.FormatterArguments)

	sanitized.Paths = sanitizeValues(configuration.Paths)
	if len(sanitized.Paths) == 0 {
		sanitized.Paths = append([]string{}, defaults.Paths...)
	}

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
