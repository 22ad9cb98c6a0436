// Package platform provides cross-platform filesystem permission handling.
// On Unix it applies chmod directly; on Windows, which has no Unix-style
// permission bits, the operations are no-ops.
package platform
