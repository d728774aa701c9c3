//go:build !taglog_noinfo && !taglog_nowarn && !taglog_noexit

package taglog_test

import "github.com/taglog/go-taglog/taglog"

// This example shows the output line format with an explicit Location.
func ExampleInfo() {
	taglog.Init(taglog.Config{Color: taglog.ColorNever})
	taglog.Info(taglog.Loc("a.c", "main", 10), "hello")
	// Output: [INFO][a.c][main][10]: hello
}

// This example shows format-argument substitution.
func ExampleInfof() {
	taglog.Init(taglog.Config{Color: taglog.ColorNever})
	taglog.Infof(taglog.Loc("a.c", "main", 10), "value=%d", 42)
	// Output: [INFO][a.c][main][10]: value=42
}

// This example shows that a guarded call fires only when the condition
// holds, while always yielding the condition.
func ExampleInfoIf() {
	taglog.Init(taglog.Config{Color: taglog.ColorNever})
	taglog.InfoIf(true, taglog.Loc("a.c", "main", 11), "shown")
	taglog.InfoIf(false, taglog.Loc("a.c", "main", 12), "hidden")
	// Output: [INFO][a.c][main][11]: shown
}

// This example shows automatic call-site capture with Here. WARN lines go
// to standard error.
func ExampleWarnf() {
	taglog.Init(taglog.Config{Color: taglog.ColorNever})
	taglog.Warnf(taglog.Here(), "unexpected token at offset %d", 22)
}
