package pipeline

import "strings"

const (
	fileConfigurationKeyConstant      = "file"
	configurationKeySeparatorConstant = "."
)

// CommandConfiguration captures configuration values for the pipeline command.
type CommandConfiguration struct {
	File string `mapstructure:"file"`
}

// DefaultCommandConfiguration provides default pipeline command settings.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{}
}

// DefaultConfigurationValues exposes default values keyed for configuration loading.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKeyPrefix + configurationKeySeparatorConstant + fileConfigurationKeyConstant: defaults.File,
	}
}

// Sanitize normalizes configuration values.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.File = strings.TrimSpace(configuration.File)
	return sanitized
}
