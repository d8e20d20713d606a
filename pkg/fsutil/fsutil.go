// Package fsutil provides filesystem helpers for safe in-place
// rewriting of documents.
package fsutil

import (
	"path/filepath"
	"strings"
)

// markdownExts are the file extensions treated as markdown.
var markdownExts = map[string]bool{
	".md":       true,
	".markdown": true,
	".mdown":    true,
	".mkd":      true,
}

// IsMarkdownPath reports whether path has a markdown file extension.
func IsMarkdownPath(path string) bool {
	return markdownExts[strings.ToLower(filepath.Ext(path))]
}
