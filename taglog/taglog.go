package taglog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Tier classifies the nature of a logged event.
type Tier int

const (
	// TierInfo is general-purpose logging and indicates no error.
	TierInfo Tier = iota
	// TierWarn indicates a runtime condition the caller should handle.
	TierWarn
	// TierExit indicates a programmer error; logging it terminates the process.
	TierExit
)

// String returns the tag as it appears in the output line.
func (t Tier) String() string {
	switch t {
	case TierInfo:
		return "INFO"
	case TierWarn:
		return "WARN"
	case TierExit:
		return "EXIT"
	default:
		return "UNKNOWN"
	}
}

// Location identifies the call site of an emission.
type Location struct {
	File string
	Func string
	Line int
}

// Loc builds a Location from explicit parts.
func Loc(file, fn string, line int) Location {
	return Location{File: file, Func: fn, Line: line}
}

// Here captures the Location of the line that calls it.
func Here() Location {
	return callerLocation(2)
}

func callerLocation(depth int) Location {
	pc, file, line, ok := runtime.Caller(depth)
	if !ok {
		return Location{File: "unknown", Func: "unknown"}
	}
	fn := "unknown"
	if f := runtime.FuncForPC(pc); f != nil {
		fn = f.Name()
		// Strip the package path, keep package.Function.
		if i := strings.LastIndex(fn, "/"); i >= 0 && i+1 < len(fn) {
			fn = fn[i+1:]
		}
	}
	return Location{File: filepath.Base(file), Func: fn, Line: line}
}

// ColorMode controls whether tier tags carry ANSI escape sequences.
type ColorMode int

const (
	// ColorAuto colorizes only when the destination is a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways colorizes unconditionally.
	ColorAlways
	// ColorNever emits plain tags.
	ColorNever
)

// Config defines options for Init.
type Config struct {
	// Stdout receives INFO lines.
	// Default: os.Stdout
	Stdout io.Writer
	// Stderr receives WARN and EXIT lines.
	// Default: os.Stderr
	Stderr io.Writer
	// Color selects tag styling.
	// Default: ColorAuto
	Color ColorMode
}

// msgBufSize bounds the rendered message, matching the facility's
// historical 1024-byte scratch buffer with one byte reserved for the
// terminator. Longer messages are truncated, never dropped.
const msgBufSize = 1024

// global state
var (
	// output sinks, injectable for tests
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr

	// tier tags as written, pre-styled at Init
	infoTag = TierInfo.String()
	warnTag = TierWarn.String()
	exitTag = TierExit.String()

	// osExit is swapped in tests; outside tests Exit never returns.
	osExit = os.Exit
)

func init() {
	Init(Config{})
}

// Init installs the output sinks and tag styling. Calling it is optional;
// the package starts out targeting os.Stdout and os.Stderr with ColorAuto.
func Init(config Config) {
	outStdout = config.Stdout
	if outStdout == nil {
		outStdout = os.Stdout
	}
	outStderr = config.Stderr
	if outStderr == nil {
		outStderr = os.Stderr
	}
	infoTag = renderTag(TierInfo, colorEnabled(config.Color, outStdout))
	warnTag = renderTag(TierWarn, colorEnabled(config.Color, outStderr))
	exitTag = renderTag(TierExit, colorEnabled(config.Color, outStderr))
}

func colorEnabled(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// tierAttrs maps each tier to its ANSI style: bold blue, yellow, red.
var tierAttrs = map[Tier][]color.Attribute{
	TierInfo: {color.FgBlue, color.Bold},
	TierWarn: {color.FgYellow, color.Bold},
	TierExit: {color.FgRed, color.Bold},
}

// renderTag returns the tag text, wrapped in escape sequences when colored.
// The sequence is composed here rather than through color.Sprint: the line
// format closes tags with the plain reset, not the library's per-attribute
// reset.
func renderTag(t Tier, colored bool) string {
	if !colored {
		return t.String()
	}
	attrs := tierAttrs[t]
	codes := make([]string, len(attrs))
	for i, a := range attrs {
		codes[i] = strconv.Itoa(int(a))
	}
	return "\x1b[" + strings.Join(codes, ";") + "m" + t.String() + "\x1b[0m"
}

// clampMessage truncates msg so it fits the scratch buffer.
func clampMessage(msg string) string {
	if len(msg) < msgBufSize {
		return msg
	}
	return msg[:msgBufSize-1]
}

// emit writes one fully rendered line with a single call on the sink.
// Write errors are not surfaced: the facility is best-effort by contract.
func emit(w io.Writer, tag string, loc Location, msg string) {
	fmt.Fprintf(w, "[%s][%s][%s][%d]: %s\n", tag, loc.File, loc.Func, loc.Line, clampMessage(msg))
}

// --- Info tier (standard output) ---

// Info logs a message.
func Info(loc Location, msg string) {
	if !infoTierEnabled {
		return
	}
	emit(outStdout, infoTag, loc, msg)
}

// Infof logs a message formatted with fmt.Sprintf.
func Infof(loc Location, format string, v ...any) {
	if !infoTierEnabled {
		return
	}
	emit(outStdout, infoTag, loc, fmt.Sprintf(format, v...))
}

// InfoIf logs the message only when cond is true and returns cond, so the
// check can stay inline in a larger expression.
func InfoIf(cond bool, loc Location, msg string) bool {
	if cond {
		Info(loc, msg)
	}
	return cond
}

// InfofIf is the formatted variant of InfoIf.
func InfofIf(cond bool, loc Location, format string, v ...any) bool {
	if cond {
		Infof(loc, format, v...)
	}
	return cond
}

// --- Warn tier (standard error) ---

// Warn logs a message indicating a runtime condition the caller should
// handle. Control always returns to the caller; recovery stays the
// caller's responsibility.
func Warn(loc Location, msg string) {
	if !warnTierEnabled {
		return
	}
	emit(outStderr, warnTag, loc, msg)
}

// Warnf logs a runtime condition formatted with fmt.Sprintf.
func Warnf(loc Location, format string, v ...any) {
	if !warnTierEnabled {
		return
	}
	emit(outStderr, warnTag, loc, fmt.Sprintf(format, v...))
}

// WarnIf logs the message only when cond is true and returns cond.
func WarnIf(cond bool, loc Location, msg string) bool {
	if cond {
		Warn(loc, msg)
	}
	return cond
}

// WarnfIf is the formatted variant of WarnIf.
func WarnfIf(cond bool, loc Location, format string, v ...any) bool {
	if cond {
		Warnf(loc, format, v...)
	}
	return cond
}

// --- Exit tier (standard error, then terminate) ---

// Exit logs a programmer error and terminates the process with a failure
// status once the write completes. It does not return unless the tier is
// compiled out.
func Exit(loc Location, msg string) {
	if !exitTierEnabled {
		return
	}
	emit(outStderr, exitTag, loc, msg)
	osExit(1)
}

// Exitf is the formatted variant of Exit.
func Exitf(loc Location, format string, v ...any) {
	if !exitTierEnabled {
		return
	}
	emit(outStderr, exitTag, loc, fmt.Sprintf(format, v...))
	osExit(1)
}

// ExitIf logs and terminates only when cond is true; a false cond is
// returned unchanged so assertion-style checks can stay inline.
func ExitIf(cond bool, loc Location, msg string) bool {
	if cond {
		Exit(loc, msg)
	}
	return cond
}

// ExitfIf is the formatted variant of ExitIf.
func ExitfIf(cond bool, loc Location, format string, v ...any) bool {
	if cond {
		Exitf(loc, format, v...)
	}
	return cond
}
