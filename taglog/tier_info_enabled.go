//go:build !taglog_noinfo

package taglog

const infoTierEnabled = true
