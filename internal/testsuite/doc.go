// Package testsuite runs the configured test runner and example smoke tests.
//
// The service treats the runner and interpreter as opaque executables judged
// solely by exit code; example scripts pass when they terminate without error.
package testsuite
