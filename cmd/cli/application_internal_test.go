package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var expectedCommandNames = []string{
	"test",
	"lint",
	"format",
	"all",
	"pipeline",
}

func TestNewApplicationRegistersCommands(t *testing.T) {
	application := NewApplication()
	require.NotNil(t, application.rootCommand)

	registeredNames := map[string]bool{}
	for _, registeredCommand := range application.rootCommand.Commands() {
		registeredNames[registeredCommand.Name()] = true
	}

	for _, expectedName := range expectedCommandNames {
		require.True(t, registeredNames[expectedName], expectedName)
	}
}

func TestEmbeddedDefaultConfigurationParses(t *testing.T) {
	embeddedContent, embeddedType := EmbeddedDefaultConfiguration()
	require.Equal(t, configurationTypeConstant, embeddedType)

	parsedConfiguration := map[string]any{}
	require.NoError(t, yaml.Unmarshal(embeddedContent, &parsedConfiguration))
	require.Contains(t, parsedConfiguration, "common")
	require.Contains(t, parsedConfiguration, "tasks")
}

func TestInitializeConfigurationAppliesEmbeddedDefaults(t *testing.T) {
	application := NewApplication()

	initializationError := application.initializeConfiguration(application.rootCommand)
	require.NoError(t, initializationError)

	require.Equal(t, "info", application.configuration.Common.LogLevel)
	require.Equal(t, "structured", application.configuration.Common.LogFormat)
	require.Equal(t, "pytest", application.configuration.Tasks.Test.Runner)
	require.Equal(t, []string{"tests", "src"}, application.configuration.Tasks.Test.Paths)
	require.Equal(t, "python", application.configuration.Tasks.Test.Interpreter)
	require.Equal(t, "ruff", application.configuration.Tasks.Lint.Tool)
	require.Equal(t, []string{"check"}, application.configuration.Tasks.Lint.Arguments)
	require.Equal(t, "isort", application.configuration.Tasks.Format.Sorter)
	require.Equal(t, "black", application.configuration.Tasks.Format.Formatter)
	require.Equal(t, []string{"src", "tests", "examples"}, application.configuration.Tasks.Format.Paths)
	require.Empty(t, application.configuration.Tasks.Pipeline.File)
}

func TestHumanReadableLoggingFollowsConfiguredFormat(t *testing.T) {
	testCases := []struct {
		name           string
		logFormat      string
		expectedResult bool
	}{
		{name: "structured_format", logFormat: "structured", expectedResult: false},
		{name: "console_format", logFormat: "console", expectedResult: true},
		{name: "console_format_mixed_case", logFormat: "Console", expectedResult: true},
		{name: "blank_format", logFormat: "", expectedResult: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			application := &Application{}
			application.configuration.Common.LogFormat = testCase.logFormat
			require.Equal(t, testCase.expectedResult, application.humanReadableLoggingEnabled())
		})
	}
}

func TestFlushLoggerToleratesMissingLogger(t *testing.T) {
	application := &Application{}
	require.NoError(t, application.flushLogger())
}
