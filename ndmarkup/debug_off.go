//go:build !ndoc_debug

package ndmarkup

const debugChecks = false
