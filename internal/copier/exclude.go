package copier

import "github.com/bmatcuk/doublestar/v4"

// excludePatterns are glob patterns, matched against entry base names,
// for build artifacts that must never be copied out of a template bundle.
// A directory matching a pattern is pruned entirely.
var excludePatterns = []string{
	"*.pyc",
	"*.pyo",
	"__pycache__",
	".DS_Store",
}

// Excluded reports whether the file or directory base name is a build
// artifact to skip during copy.
func Excluded(name string) bool {
	for _, pattern := range excludePatterns {
		if matched, _ := doublestar.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
