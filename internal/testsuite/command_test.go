package testsuite_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/checkup/internal/execshell"
	"github.com/temirov/checkup/internal/testsuite"
)

func TestCommandRunsConfiguredRunner(testInstance *testing.T) {
	executor := &scriptedToolExecutor{}
	builder := testsuite.CommandBuilder{
		LoggerProvider: func() *zap.Logger { return zap.NewNop() },
		Executor:       executor,
		ConfigurationProvider: func() testsuite.Configuration {
			return testsuite.Configuration{
				Runner: testRunnerNameConstant,
				Paths:  []string{"tests"},
			}
		},
	}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	command.SetOut(&bytes.Buffer{})
	command.SetErr(&bytes.Buffer{})
	command.SetArgs([]string{})

	executionError := command.Execute()
	require.NoError(testInstance, executionError)

	require.Len(testInstance, executor.recordedCommands, 1)
	require.Equal(testInstance, execshell.CommandPytest, executor.recordedCommands[0].Name)
	require.Equal(testInstance, []string{"tests"}, executor.recordedCommands[0].Details.Arguments)
}

func TestCommandFlagOverridesExampleOutputSetting(testInstance *testing.T) {
	executor := &scriptedToolExecutor{
		executions: []scriptedExecution{
			{},
			{result: execshell.ExecutionResult{StandardOutput: "example output\n"}},
		},
	}
	builder := testsuite.CommandBuilder{
		LoggerProvider: func() *zap.Logger { return zap.NewNop() },
		Executor:       executor,
		ConfigurationProvider: func() testsuite.Configuration {
			return testsuite.Configuration{
				Examples:          []string{testFirstExampleScriptConstant},
				ShowExampleOutput: false,
			}
		},
	}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	outputBuffer := &bytes.Buffer{}
	command.SetOut(outputBuffer)
	command.SetErr(&bytes.Buffer{})
	command.SetArgs([]string{"--show-example-output"})

	executionError := command.Execute()
	require.NoError(testInstance, executionError)

	require.Len(testInstance, executor.recordedCommands, 2)
	require.Equal(testInstance, "example output\n", outputBuffer.String())
}

func TestCommandUsesDefaultsWithoutConfigurationProvider(testInstance *testing.T) {
	executor := &scriptedToolExecutor{}
	builder := testsuite.CommandBuilder{
		LoggerProvider: func() *zap.Logger { return zap.NewNop() },
		Executor:       executor,
	}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	command.SetOut(&bytes.Buffer{})
	command.SetErr(&bytes.Buffer{})
	command.SetArgs([]string{})

	executionError := command.Execute()
	require.NoError(testInstance, executionError)

	require.Len(testInstance, executor.recordedCommands, 1)
	require.Equal(testInstance, []string{"tests", "src"}, executor.recordedCommands[0].Details.Arguments)
}
