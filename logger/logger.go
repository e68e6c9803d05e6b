package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// ErrColorSlot is returned when a CustomLevel record names a slot other
// than NoSlot or 0-9.
var ErrColorSlot = errors.New("logger: custom color slot out of range")

// callerDepth skips callerSite, Logger.record, Logger.logf and the entry point.
const callerDepth = 4

// Config defines options for New and Init.
type Config struct {
	// MinLevel drops every record below it before any formatting happens.
	// Default: InfoLevel (everything enabled)
	MinLevel Level
	// Style is the initial rendering policy.
	// Default: nil (DefaultStyle())
	Style *Style
	// Output receives rendered lines.
	// Default: nil (os.Stdout)
	Output io.Writer
	// Clock supplies record timestamps. It is only called when the layout
	// contains Timestamp.
	// Default: nil (time.Now)
	Clock func() time.Time
	// JournalPrefix prepends sd-daemon priority prefixes (<6>, <4>, ...) to
	// every output line, for services whose stdout is read by journald.
	// Default: false
	JournalPrefix bool
}

// Logger renders and writes records under a replaceable Style.
// A Logger is safe for concurrent use.
type Logger struct {
	minLevel Level
	clock    func() time.Time
	journal  bool

	styleMu sync.RWMutex
	style   Style

	// Mutex for thread-safe writes across concurrent goroutines
	outMu sync.Mutex
	out   io.Writer
}

// New returns a Logger for cfg. The style is validated first.
func New(cfg Config) (*Logger, error) {
	style := DefaultStyle()
	if cfg.Style != nil {
		style = cfg.Style.clone()
	}
	if err := style.Validate(); err != nil {
		return nil, err
	}
	if cfg.MinLevel < InfoLevel || cfg.MinLevel > CustomLevel {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, int(cfg.MinLevel))
	}
	l := &Logger{
		minLevel: cfg.MinLevel,
		clock:    cfg.Clock,
		journal:  cfg.JournalPrefix,
		style:    style,
		out:      cfg.Output,
	}
	if l.clock == nil {
		l.clock = time.Now
	}
	if l.out == nil {
		l.out = os.Stdout
	}
	return l, nil
}

// Configure replaces the active style. An invalid style is rejected and
// the previous one stays active.
func (l *Logger) Configure(style Style) error {
	if err := style.Validate(); err != nil {
		return err
	}
	style = style.clone()
	l.styleMu.Lock()
	l.style = style
	l.styleMu.Unlock()
	return nil
}

// Style returns a copy of the active style.
func (l *Logger) Style() Style {
	return l.current().clone()
}

// current returns the active style without cloning it. A published style
// is never mutated: Configure and New store a clone the caller cannot reach.
func (l *Logger) current() Style {
	l.styleMu.RLock()
	defer l.styleMu.RUnlock()
	return l.style
}

// MinLevel returns the level below which records are dropped.
func (l *Logger) MinLevel() Level {
	return l.minLevel
}

// Enabled reports whether records at level pass the gate.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.minLevel
}

// Emit writes a record whose source location is already known.
// Records below the minimum level are dropped without formatting.
// A zero r.Time is filled from the clock when the layout shows timestamps.
// A CustomLevel record with an out-of-range Slot returns ErrColorSlot.
// Write errors are returned as reported by the output.
func (l *Logger) Emit(r Record) error {
	if ok, err := l.admit(r.Level, r.Slot); !ok {
		return err
	}
	return l.emit(r, l.current())
}

// admit checks the slot and then the level gate. It reports whether the
// record should be rendered.
func (l *Logger) admit(level Level, slot int) (bool, error) {
	if level == CustomLevel && slot != NoSlot && (slot < 0 || slot >= NumCustomColors) {
		return false, fmt.Errorf("%w: %d", ErrColorSlot, slot)
	}
	return l.Enabled(level), nil
}

func (l *Logger) emit(r Record, style Style) error {
	if r.Time.IsZero() && style.Layout.Has(Timestamp) {
		r.Time = l.clock()
	}
	return l.write(r.Level, style.Format(r))
}

func (l *Logger) write(level Level, line string) error {
	if l.journal {
		line = prefixLines(line, journalPriority(level))
	}

	l.outMu.Lock()
	defer l.outMu.Unlock()
	_, err := io.WriteString(l.out, line)
	return err
}

// prefixLines puts prefix in front of every "\n"-terminated line of text.
func prefixLines(text, prefix string) string {
	if prefix == "" || text == "" {
		return text
	}
	body, trailing := strings.CutSuffix(text, "\n")
	out := prefix + strings.ReplaceAll(body, "\n", "\n"+prefix)
	if trailing {
		out += "\n"
	}
	return out
}

// logf is the single path behind every entry point.
func (l *Logger) logf(level Level, tag string, slot int, format string, args []any) error {
	if ok, err := l.admit(level, slot); !ok {
		return err
	}
	style := l.current()
	return l.emit(l.record(style, level, tag, slot, format, args), style)
}

func (l *Logger) record(style Style, level Level, tag string, slot int, format string, args []any) Record {
	r := Record{Level: level, Tag: tag, Slot: slot, Format: format, Args: args}
	if style.Layout.Has(FileLine) {
		r.File, r.Line = callerSite(callerDepth)
	}
	return r
}

// callerSite returns the base file name and line at the given stack depth.
func callerSite(depth int) (string, int) {
	_, file, line, ok := runtime.Caller(depth)
	if !ok {
		return "unknown", 0
	}
	return filepath.Base(file), line
}

// Infof logs an informational message formatted with fmt.Sprintf.
// Thread-safe for concurrent use.
func (l *Logger) Infof(format string, args ...any) error {
	return l.logf(InfoLevel, "", NoSlot, format, args)
}

// Warnf logs a warning message formatted with fmt.Sprintf.
// Thread-safe for concurrent use.
func (l *Logger) Warnf(format string, args ...any) error {
	return l.logf(WarnLevel, "", NoSlot, format, args)
}

// Errorf logs an error message formatted with fmt.Sprintf.
// Thread-safe for concurrent use.
func (l *Logger) Errorf(format string, args ...any) error {
	return l.logf(ErrorLevel, "", NoSlot, format, args)
}

// Customf logs a message under a caller-chosen tag, painted with the
// palette's custom color.
// Thread-safe for concurrent use.
func (l *Logger) Customf(tag string, format string, args ...any) error {
	return l.logf(CustomLevel, tag, NoSlot, format, args)
}

// CustomSlotf logs a message under a caller-chosen tag painted with
// Style.CustomColors[slot]. A slot outside 0-9 returns ErrColorSlot and
// writes nothing.
// Thread-safe for concurrent use.
func (l *Logger) CustomSlotf(tag string, slot int, format string, args ...any) error {
	if slot == NoSlot {
		return fmt.Errorf("%w: %d", ErrColorSlot, slot)
	}
	return l.logf(CustomLevel, tag, slot, format, args)
}

// --- Package-level logger ---

// std is the logger behind the package-level functions.
var std atomic.Pointer[Logger]

func init() {
	l, err := New(Config{})
	if err != nil {
		panic(err)
	}
	std.Store(l)
}

// Init replaces the package-level logger with one built from config.
// On error the previous logger stays in place.
func Init(config Config) error {
	l, err := New(config)
	if err != nil {
		return err
	}
	std.Store(l)
	return nil
}

// Default returns the package-level logger.
func Default() *Logger {
	return std.Load()
}

// SetDefault makes l the package-level logger.
func SetDefault(l *Logger) {
	std.Store(l)
}

// Configure replaces the style of the package-level logger.
func Configure(style Style) error {
	return Default().Configure(style)
}

// GetStyle returns a copy of the package-level logger's style.
func GetStyle() Style {
	return Default().Style()
}

// Infof logs an informational message on the package-level logger.
func Infof(format string, args ...any) error {
	return Default().logf(InfoLevel, "", NoSlot, format, args)
}

// Warnf logs a warning message on the package-level logger.
func Warnf(format string, args ...any) error {
	return Default().logf(WarnLevel, "", NoSlot, format, args)
}

// Errorf logs an error message on the package-level logger.
func Errorf(format string, args ...any) error {
	return Default().logf(ErrorLevel, "", NoSlot, format, args)
}

// Customf logs a tagged message on the package-level logger.
func Customf(tag string, format string, args ...any) error {
	return Default().logf(CustomLevel, tag, NoSlot, format, args)
}

// CustomSlotf logs a tagged message with a custom color slot on the
// package-level logger.
func CustomSlotf(tag string, slot int, format string, args ...any) error {
	if slot == NoSlot {
		return fmt.Errorf("%w: %d", ErrColorSlot, slot)
	}
	return Default().logf(CustomLevel, tag, slot, format, args)
}
