package logging

// Field name constants for structured logging.
const (
	FieldError = "error"
	FieldPath  = "path"
	FieldFiles = "files"
	FieldJobs  = "jobs"

	FieldFlavor      = "flavor"
	FieldTypographer = "typographer"
	FieldWrite       = "write"

	FieldFilesProcessed = "files_processed"
	FieldFilesChanged   = "files_changed"
	FieldFilesWritten   = "files_written"

	FieldRule    = "rule"
	FieldChain   = "chain"
	FieldEnabled = "enabled"

	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
