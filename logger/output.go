package logger

// Output controls what categories of information are shown at each verbosity level.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information are displayed regardless of severity.
//
// Verbosity Levels:
//
//	0 (default) - Prompt fragments, tables, errors with hints
//	1 (-v)      - + Exclusion summaries, batch progress, run metadata
//	2 (-vv)     - + Per-axis draws, loaded config and table files
//	3 (-vvv)    - + SQL statements, per-rule evaluation

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputResults OutputCategory = iota // Prompts, assignments, tables
	OutputErrors                        // Errors with hints

	// Level 1 (-v) - Informational
	OutputProgress   // Batch progress
	OutputExclusions // Exclusion removal summaries
	OutputRunInfo    // Run ID, seed range, worker count

	// Level 2 (-vv) - Detailed
	OutputDraws  // Individual axis draws
	OutputConfig // Config values and table files loaded
	OutputTiming // Operation timing

	// Level 3 (-vvv) - Trace
	OutputSQLQueries // Individual SQL statements executed
	OutputRuleTrace  // Every rule evaluated, fired or not
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputResults: VerbosityUser,
	OutputErrors:  VerbosityUser,

	OutputProgress:   VerbosityInfo,
	OutputExclusions: VerbosityInfo,
	OutputRunInfo:    VerbosityInfo,

	OutputDraws:  VerbosityDebug,
	OutputConfig: VerbosityDebug,
	OutputTiming: VerbosityDebug,

	OutputSQLQueries: VerbosityTrace,
	OutputRuleTrace:  VerbosityTrace,
}

// ShouldOutput reports whether a category is visible at the given verbosity.
// Unknown categories are hidden.
func ShouldOutput(verbosity int, category OutputCategory) bool {
	level, ok := categoryLevels[category]
	if !ok {
		return false
	}
	return verbosity >= level
}
