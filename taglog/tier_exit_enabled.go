//go:build !taglog_noexit

package taglog

const exitTierEnabled = true
