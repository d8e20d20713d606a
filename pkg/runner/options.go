// Package runner orchestrates processing multiple files through the
// core pipeline with a bounded worker pool.
package runner

// Options controls a runner invocation.
type Options struct {
	// Paths are the input files to process.
	Paths []string

	// Jobs is the worker count. Zero or negative means NumCPU.
	Jobs int

	// Write rewrites each input file in place with the rendered
	// output instead of returning it.
	Write bool
}
