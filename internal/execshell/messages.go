package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	commandLabelTemplateConstant            = "%s%s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	commandArgumentsJoinSeparatorConstant   = " "
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	interpreterNamePrefixConstant           = "python"
)

const (
	testRunStartTemplateConstant                    = "Running test suite over %s"
	testRunSuccessTemplateConstant                  = "Test suite passed for %s"
	testRunFailureTemplateConstant                  = "Test suite failed for %s (exit code %d%s)"
	testRunExecutionFailureTemplateConstant         = "Unable to run test suite over %s: %s"
	lintStartTemplateConstant                       = "Analyzing %s"
	lintSuccessTemplateConstant                     = "No violations found in %s"
	lintFailureTemplateConstant                     = "Violations reported for %s (exit code %d%s)"
	lintExecutionFailureTemplateConstant            = "Unable to analyze %s: %s"
	importSortStartTemplateConstant                 = "Sorting imports in %s"
	importSortSuccessTemplateConstant               = "Sorted imports in %s"
	importSortFailureTemplateConstant               = "Failed to sort imports in %s (exit code %d%s)"
	importSortExecutionFailureTemplateConstant      = "Unable to sort imports in %s: %s"
	reformatStartTemplateConstant                   = "Formatting %s"
	reformatSuccessTemplateConstant                 = "Formatted %s"
	reformatFailureTemplateConstant                 = "Failed to format %s (exit code %d%s)"
	reformatExecutionFailureTemplateConstant        = "Unable to format %s: %s"
	smokeScriptStartTemplateConstant                = "Smoke testing %s"
	smokeScriptSuccessTemplateConstant              = "Smoke test %s passed"
	smokeScriptFailureTemplateConstant              = "Smoke test %s failed (exit code %d%s)"
	smokeScriptExecutionFailureTemplateConstant     = "Unable to smoke test %s: %s"

	unspecifiedInvocationTargetsLabelConstant    = "configured paths"
	unspecifiedSmokeScriptLabelConstant          = "script"
	invocationTargetsJoinSeparatorStringConstant = " "
	invocationTargetArgumentPrefixStringConstant = "-"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	switch {
	case command.Name == CommandPytest:
		return formatter.describeTargetedMessage(command, result, failure, stage, testRunTemplates)
	case command.Name == CommandRuff:
		return formatter.describeTargetedMessage(command, result, failure, stage, lintTemplates)
	case command.Name == CommandIsort:
		return formatter.describeTargetedMessage(command, result, failure, stage, importSortTemplates)
	case command.Name == CommandBlack:
		return formatter.describeTargetedMessage(command, result, failure, stage, reformatTemplates)
	case strings.HasPrefix(string(command.Name), interpreterNamePrefixConstant):
		return formatter.describeSmokeScriptMessage(command, result, failure, stage)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

type stageTemplates struct {
	start            string
	success          string
	failure          string
	executionFailure string
}

var (
	testRunTemplates = stageTemplates{
		start:            testRunStartTemplateConstant,
		success:          testRunSuccessTemplateConstant,
		failure:          testRunFailureTemplateConstant,
		executionFailure: testRunExecutionFailureTemplateConstant,
	}
	lintTemplates = stageTemplates{
		start:            lintStartTemplateConstant,
		success:          lintSuccessTemplateConstant,
		failure:          lintFailureTemplateConstant,
		executionFailure: lintExecutionFailureTemplateConstant,
	}
	importSortTemplates = stageTemplates{
		start:            importSortStartTemplateConstant,
		success:          importSortSuccessTemplateConstant,
		failure:          importSortFailureTemplateConstant,
		executionFailure: importSortExecutionFailureTemplateConstant,
	}
	reformatTemplates = stageTemplates{
		start:            reformatStartTemplateConstant,
		success:          reformatSuccessTemplateConstant,
		failure:          reformatFailureTemplateConstant,
		executionFailure: reformatExecutionFailureTemplateConstant,
	}
)

func (formatter CommandMessageFormatter) describeTargetedMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage, templates stageTemplates) string {
	targetsLabel := formatter.describeInvocationTargets(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(templates.start, targetsLabel)
	case messageStageSuccess:
		return fmt.Sprintf(templates.success, targetsLabel)
	case messageStageFailure:
		return fmt.Sprintf(templates.failure, targetsLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(templates.executionFailure, targetsLabel, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeSmokeScriptMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	scriptLabel := unspecifiedSmokeScriptLabelConstant
	if len(command.Details.Arguments) > 0 {
		scriptLabel = command.Details.Arguments[0]
	}

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(smokeScriptStartTemplateConstant, scriptLabel)
	case messageStageSuccess:
		return fmt.Sprintf(smokeScriptSuccessTemplateConstant, scriptLabel)
	case messageStageFailure:
		return fmt.Sprintf(smokeScriptFailureTemplateConstant, scriptLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(smokeScriptExecutionFailureTemplateConstant, scriptLabel, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := formatter.formatCommandLabel(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.describeFailure(failure))
	default:
		return commandLabel
	}
}

// describeInvocationTargets summarizes the non-flag arguments a tool was pointed at.
func (formatter CommandMessageFormatter) describeInvocationTargets(command ShellCommand) string {
	targets := make([]string, 0, len(command.Details.Arguments))
	for _, argument := range command.Details.Arguments {
		trimmedArgument := strings.TrimSpace(argument)
		if len(trimmedArgument) == 0 {
			continue
		}
		if strings.HasPrefix(trimmedArgument, invocationTargetArgumentPrefixStringConstant) {
			continue
		}
		targets = append(targets, trimmedArgument)
	}
	if len(targets) == 0 {
		return unspecifiedInvocationTargetsLabelConstant
	}
	return strings.Join(targets, invocationTargetsJoinSeparatorStringConstant)
}

func (formatter CommandMessageFormatter) formatCommandLabel(command ShellCommand) string {
	commandParts := []string{string(command.Name)}
	if len(command.Details.Arguments) > 0 {
		commandParts = append(commandParts, strings.Join(command.Details.Arguments, commandArgumentsJoinSeparatorConstant))
	}
	commandLabel := strings.Join(commandParts, commandArgumentsJoinSeparatorConstant)
	return fmt.Sprintf(commandLabelTemplateConstant, commandLabel, formatter.formatWorkingDirectorySuffix(command))
}

func (formatter CommandMessageFormatter) formatWorkingDirectorySuffix(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}
