//go:build debug

package board

// debugChecks makes every registry mutation re-verify the topology.
const debugChecks = true
