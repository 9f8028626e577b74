package pipeline_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/checkup/internal/pipeline"
)

const (
	testConfigurationFileNameConstant = "pipeline.yaml"
	flatStepsConfigurationConstant    = `steps:
  - task: format
  - task: lint
    with:
      paths:
        - src
  - task: test
`
	nestedStepsConfigurationConstant = `pipeline:
  steps:
    - task: TEST
`
	jsonStepsConfigurationConstant = `{"steps": [{"task": "lint", "with": {"paths": ["src"]}}]}`
	emptyStepsConfigurationConstant = `steps: []
`
	missingTaskConfigurationConstant = `steps:
  - with:
      paths:
        - src
`
)

func writeConfigurationFile(testInstance *testing.T, content string) string {
	testInstance.Helper()
	configurationPath := filepath.Join(testInstance.TempDir(), testConfigurationFileNameConstant)
	require.NoError(testInstance, os.WriteFile(configurationPath, []byte(content), 0o644))
	return configurationPath
}

func TestLoadConfigurationParsesOrderedSteps(testInstance *testing.T) {
	configurationPath := writeConfigurationFile(testInstance, flatStepsConfigurationConstant)

	configuration, loadError := pipeline.LoadConfiguration(configurationPath)
	require.NoError(testInstance, loadError)

	require.Len(testInstance, configuration.Steps, 3)
	require.Equal(testInstance, pipeline.TaskTypeFormat, configuration.Steps[0].Task)
	require.Equal(testInstance, pipeline.TaskTypeLint, configuration.Steps[1].Task)
	require.Equal(testInstance, pipeline.TaskTypeTest, configuration.Steps[2].Task)
	require.Contains(testInstance, configuration.Steps[1].Options, "paths")
}

func TestLoadConfigurationAcceptsNestedPipelineDocument(testInstance *testing.T) {
	configurationPath := writeConfigurationFile(testInstance, nestedStepsConfigurationConstant)

	configuration, loadError := pipeline.LoadConfiguration(configurationPath)
	require.NoError(testInstance, loadError)

	require.Len(testInstance, configuration.Steps, 1)
	require.Equal(testInstance, pipeline.TaskTypeTest, configuration.Steps[0].Task)
}

func TestLoadConfigurationAcceptsJSONDocuments(testInstance *testing.T) {
	configurationPath := writeConfigurationFile(testInstance, jsonStepsConfigurationConstant)

	configuration, loadError := pipeline.LoadConfiguration(configurationPath)
	require.NoError(testInstance, loadError)

	require.Len(testInstance, configuration.Steps, 1)
	require.Equal(testInstance, pipeline.TaskTypeLint, configuration.Steps[0].Task)
}

func TestLoadConfigurationRejectsInvalidDocuments(testInstance *testing.T) {
	testCases := []struct {
		name                 string
		configurationContent string
		expectedErrorMessage string
	}{
		{
			name:                 "empty_steps",
			configurationContent: emptyStepsConfigurationConstant,
			expectedErrorMessage: "at least one step",
		},
		{
			name:                 "missing_task_name",
			configurationContent: missingTaskConfigurationConstant,
			expectedErrorMessage: "missing task name",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			configurationPath := writeConfigurationFile(testInstance, testCase.configurationContent)

			_, loadError := pipeline.LoadConfiguration(configurationPath)
			require.Error(testInstance, loadError)
			require.ErrorContains(testInstance, loadError, testCase.expectedErrorMessage)
		})
	}
}

func TestLoadConfigurationRejectsBlankPath(testInstance *testing.T) {
	_, loadError := pipeline.LoadConfiguration("   ")
	require.Error(testInstance, loadError)
}

func TestLoadConfigurationReportsMissingFiles(testInstance *testing.T) {
	missingPath := filepath.Join(testInstance.TempDir(), "absent.yaml")

	_, loadError := pipeline.LoadConfiguration(missingPath)
	require.Error(testInstance, loadError)
	require.ErrorContains(testInstance, loadError, "failed to load pipeline configuration")
}
