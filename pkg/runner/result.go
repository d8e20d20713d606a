package runner

// FileOutcome is the result of processing one file.
type FileOutcome struct {
	// Path is the input file path.
	Path string

	// Output is the rendered text after all core rules ran.
	Output string

	// Changed is true when the output differs from the input.
	Changed bool

	// Written is true when the file was rewritten in place.
	Written bool

	// Err holds the per-file failure, if any. Other files are still
	// processed.
	Err error
}

// Stats aggregates counters across all files of a run.
type Stats struct {
	FilesProcessed int
	FilesChanged   int
	FilesWritten   int
	Errors         int
}

// Result collects outcomes in input order plus aggregate stats.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)
	r.Stats.FilesProcessed++
	if outcome.Err != nil {
		r.Stats.Errors++
		return
	}
	if outcome.Changed {
		r.Stats.FilesChanged++
	}
	if outcome.Written {
		r.Stats.FilesWritten++
	}
}

// HasErrors reports whether any file failed.
func (r *Result) HasErrors() bool {
	return r.Stats.Errors > 0
}
