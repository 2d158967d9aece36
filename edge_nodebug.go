//go:build !brepdebug

package brep

const debugChecks = false
