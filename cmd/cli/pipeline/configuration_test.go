package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	pipelinecmd "github.com/temirov/checkup/cmd/cli/pipeline"
)

func TestCommandConfigurationSanitizeTrimsFilePath(testInstance *testing.T) {
	configuration := pipelinecmd.CommandConfiguration{File: "  pipeline.yaml  "}

	sanitizedConfiguration := configuration.Sanitize()

	require.Equal(testInstance, "pipeline.yaml", sanitizedConfiguration.File)
}

func TestDefaultConfigurationValuesExposeFileKey(testInstance *testing.T) {
	defaultValues := pipelinecmd.DefaultConfigurationValues("tasks.pipeline")

	require.Contains(testInstance, defaultValues, "tasks.pipeline.file")
	require.Equal(testInstance, "", defaultValues["tasks.pipeline.file"])
}
