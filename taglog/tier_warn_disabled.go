//go:build taglog_nowarn

package taglog

// The warn tier is compiled out; its operations evaluate and discard
// their arguments.
const warnTierEnabled = false
