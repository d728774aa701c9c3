//go:build !taglog_nowarn

package taglog

const warnTierEnabled = true
