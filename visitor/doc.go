// Package visitor offers generic visitors over loosely typed containers.
// It iterates slices and arrays by index and maps by stringified key,
// with simple callback-based traversal.
package visitor
