//go:build !debug

package board

const debugChecks = false
