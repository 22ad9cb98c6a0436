// Package copier implements the recursive template copy used by every
// install unit. It filters build artifacts out of the walk, creates
// destination directories on demand, and supports a skip-existing mode that
// never overwrites a file the user may have edited. All filesystem access
// goes through afero.Fs so the copy logic is unit-testable in memory.
package copier
