//go:build brepdebug

package brep

// debugChecks enables the endpoint check in [NewEdgeDebug]. Build with the
// brepdebug tag while developing shape algorithms; release builds skip the
// check.
const debugChecks = true
