// Package execshell provides structured helpers for invoking external tools.
//
// It wraps os/exec with logging via ShellExecutor, exposes OSCommandRunner for
// default process execution, and defines the abstractions used throughout
// checkup to run test runners, linters, formatters, and interpreters in a
// testable manner.
package execshell
