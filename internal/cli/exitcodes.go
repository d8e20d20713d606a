package cli

// Exit codes for smartmd.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitProcessErrors indicates one or more files failed to process.
	ExitProcessErrors = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)
