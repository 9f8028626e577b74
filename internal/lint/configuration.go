package lint

import "strings"

const (
	defaultToolNameConstant           = "ruff"
	defaultToolArgumentConstant       = "check"
	defaultSourcePathConstant         = "src"
	toolConfigurationKeyConstant      = "tool"
	argumentsConfigurationKeyConstant = "arguments"
	pathsConfigurationKeyConstant     = "paths"
	configurationKeySeparatorConstant = "."
)

// Configuration captures settings for the lint task.
type Configuration struct {
	Tool      string   `mapstructure:"tool"`
	Arguments []string `mapstructure:"arguments"`
	Paths     []string `mapstructure:"paths"`
}

// DefaultConfiguration provides default lint task settings.
func DefaultConfiguration() Configuration {
	return Configuration{
		Tool:      defaultToolNameConstant,
		Arguments: []string{defaultToolArgumentConstant},
		Paths:     []string{defaultSourcePathConstant},
	}
}

// DefaultConfigurationValues exposes default values keyed for configuration loading.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	defaults := DefaultConfiguration()
	return map[string]any{
		configurationKeyPrefix + configurationKeySeparatorConstant + toolConfigurationKeyConstant:      defaults.Tool,
		configurationKeyPrefix + configurationKeySeparatorConstant + argumentsConfigurationKeyConstant: defaults.Arguments,
		configurationKeyPrefix + configurationKeySeparatorConstant + pathsConfigurationKeyConstant:     defaults.Paths,
	}
}

// Sanitize normalizes configuration values and applies defaults for missing entries.
func (configuration Configuration) Sanitize() Configuration {
	defaults := DefaultConfiguration()
	sanitized := configuration

	sanitized.Tool = strings.TrimSpace(configuration.Tool)
	if len(sanitized.Tool) == 0 {
		sanitized.Tool = defaults.Tool
	}

	sanitized.Arguments = sanitizeValues(configuration.Arguments)

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
