// Package pipeline sequences verification tasks with fail-fast semantics.
//
// Operations run strictly in order; the first failure aborts the remaining
// steps and surfaces the underlying tool diagnostics unchanged. Step
// sequences are either fixed (the all command) or declared in a YAML or JSON
// pipeline file.
package pipeline
