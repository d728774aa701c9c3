// Package taglog is a minimal call-site-annotated logging facility with
// three tiers: INFO, WARN, and EXIT.
//
// Every line has the form
//
//	[<TAG>][<file>][<function>][<line>]: <message>
//
// INFO goes to standard output; WARN and EXIT go to standard error. EXIT
// additionally terminates the process with a failure status and does not
// return. Rendered messages are bounded by a 1024-byte scratch area and
// truncate rather than overflow; a bad format verb degrades to fmt's
// best-effort notation but the line is still written.
//
// # Call sites
//
// Operations take an explicit Location. Build one with Loc, or let Here
// capture the calling line:
//
//	taglog.Infof(taglog.Here(), "listening on %s", addr)
//
// # Guarded forms
//
// Each operation has an *If variant that takes a leading condition, fires
// only when it is true, and always returns the condition so the check can
// stay inline:
//
//	if taglog.WarnIf(n == 0, taglog.Here(), "empty batch") {
//		return nil
//	}
//
// # Tier elision
//
// Building with the taglog_noinfo, taglog_nowarn, or taglog_noexit tags
// compiles the corresponding tier down to no-ops that still accept and
// discard their arguments. An elided exit tier neither logs nor
// terminates.
//
// # Output and color
//
// Sinks are injectable through Init for testing. Tier tags are colorized
// (bold blue, yellow, red) when the sink is a terminal; override with
// Config.Color, or with TAGLOG_COLOR via InitFromEnv.
//
// The package performs no locking: concurrent callers that need
// interleaving-free output must synchronize externally.
package taglog
