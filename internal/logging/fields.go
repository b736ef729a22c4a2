// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError  = "error"
	FieldInput  = "input"
	FieldConfig = "config"
	FieldLevel  = "level"

	// Parsing fields.
	FieldTrees    = "trees"
	FieldElements = "elements"
	FieldNodes    = "nodes"
	FieldEdges    = "edges"
	FieldLeaves   = "leaves"
	FieldLine     = "line"
	FieldColumn   = "column"

	// Clustering fields.
	FieldJobs      = "jobs"
	FieldClusters  = "clusters"
	FieldIteration = "iteration"
	FieldChanged   = "changed"
	FieldConverged = "converged"
	FieldInit      = "init"
	FieldSeed      = "seed"
	FieldPairs     = "pairs"
)
