// Package format runs the import sorter and code formatter over project sources.
//
// The sorter always runs before the formatter so that formatting is applied to
// the final import order; both tools mutate files in place.
package format
