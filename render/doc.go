// Package render publishes search results to disk.
//
// FilePublisher implements search.Publisher. Every publication rewrites
// <dir>/<label>.yaml with the current path and length; <dir>/<label>.svg is
// redrawn for the final result and, rate-limited, for intermediate ones.
// Both files are replaced atomically, so a reader never sees a partial write.
package render
