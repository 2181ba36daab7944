// Package cmd implements the morph command line: it converts YAML or JSON values
// into Go types resolved from type expressions and config defined bean types.
package cmd
