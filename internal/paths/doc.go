// Package paths resolves the directory layout used by the installer: the
// user-global Cursor directory (~/.cursor), the per-project .cursor/ and
// .trellis/ directories, and the template bundle root. Every resolver honors
// a TRELLIS_* environment override before falling back to its default, which
// is also what makes the install logic testable against a temp directory.
package paths
