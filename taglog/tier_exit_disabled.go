//go:build taglog_noexit

package taglog

// The exit tier is compiled out; its operations neither log nor
// terminate the process.
const exitTierEnabled = false
