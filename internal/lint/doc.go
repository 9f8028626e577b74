// Package lint runs the configured static-analysis tool over project sources.
package lint
