//go:build linmemdebug

package buffer

const debugChecks = true
