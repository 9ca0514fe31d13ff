package timedlog

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/melih-ucgun/timedlog/internal/console"
	"github.com/melih-ucgun/timedlog/internal/consts"
	tfs "github.com/melih-ucgun/timedlog/internal/fs"
)

// ErrFileClosed is returned by emit calls when the engine is in file mode
// but its log file has already been released with Close.
var ErrFileClosed = errors.New("timedlog: log file is closed")

// Engine holds the logging configuration and the open log file, if any.
// Engines must be created with New.
// All methods are safe for concurrent use.
type Engine struct {
	mu sync.Mutex

	mode Mode
	mask Severity
	file tfs.File
	path string
	eol  string

	fs      tfs.FileSystem
	dir     string
	now     func() time.Time
	console *console.Console
}

// Option configures an Engine at construction time.
type Option func(*engineOptions)

type engineOptions struct {
	stdout io.Writer
	stderr io.Writer
	color  bool
	fs     tfs.FileSystem
	dir    string
	now    func() time.Time
}

// WithStdout sets the writer used for informational console entries.
func WithStdout(w io.Writer) Option {
	return func(o *engineOptions) { o.stdout = w }
}

// WithStderr sets the writer used for warning and alert console entries.
func WithStderr(w io.Writer) Option {
	return func(o *engineOptions) { o.stderr = w }
}

// WithColor enables pterm styling of console entries.
func WithColor(enabled bool) Option {
	return func(o *engineOptions) { o.color = enabled }
}

// withFileSystem replaces the filesystem used to open log files.
func withFileSystem(fsys tfs.FileSystem) Option {
	return func(o *engineOptions) { o.fs = fsys }
}

// WithDir sets the directory log files are created in. Defaults to the
// current working directory.
func WithDir(dir string) Option {
	return func(o *engineOptions) { o.dir = dir }
}

// WithClock sets the time source used for generated timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *engineOptions) { o.now = now }
}

// New creates a disabled Engine.
func New(opts ...Option) *Engine {
	o := &engineOptions{
		fs:  &tfs.RealFS{},
		dir: consts.DefaultDir,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}

	return &Engine{
		mode:    ModeNone,
		mask:    SeverityNone,
		fs:      o.fs,
		dir:     o.dir,
		now:     o.now,
		console: console.New(o.stdout, o.stderr, o.color),
	}
}

// Configure replaces the engine configuration.
//
// Any open log file is closed first, whatever the new mode. Unknown modes are
// treated as ModeNone, unknown severity bits are dropped and an empty
// fileBaseName falls back to "timedLog". With ModeNone or an empty mask the
// engine ends up disabled and no file is opened.
//
// In file mode "<fileBaseName>.log" is opened for appending. If that fails the
// error is returned and the engine stays disabled. An error from closing the
// previous file is returned too, but does not prevent the new configuration.
func (e *Engine) Configure(mode Mode, mask Severity, fileBaseName string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	closeErr := e.closeLocked()

	e.mode = ModeNone
	e.mask = SeverityNone
	e.eol = ""

	if !mode.Valid() {
		mode = ModeNone
	}
	mask = mask.Normalize()
	if mode == ModeNone || mask == SeverityNone {
		return closeErr
	}

	switch mode {
	case ModeConsole:
		e.mode, e.mask = mode, mask
	case ModeFile:
		path := consts.GetLogFilePath(e.dir, fileBaseName)
		f, err := tfs.OpenAppend(e.fs, path)
		if err != nil {
			return errors.Join(closeErr, fmt.Errorf("timedlog: open log file: %w", err))
		}
		e.file, e.path = f, path
		e.mode, e.mask = mode, mask
		e.eol = consts.FileTerminator
	}

	return closeErr
}

// Close releases the log file, if one is open. Mode and mask are left as
// they are. Calling Close more than once is safe.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closeLocked()
}

func (e *Engine) closeLocked() error {
	if e.file == nil {
		return nil
	}
	err := e.file.Close()
	e.file = nil
	e.path = ""
	if err != nil {
		return fmt.Errorf("timedlog: close log file: %w", err)
	}
	return nil
}

// Inform emits an informational entry stamped with the current UTC time.
func (e *Engine) Inform(content string) error {
	return e.emit(SeverityInfo, "", content)
}

// Warn emits a warning entry stamped with the current UTC time.
func (e *Engine) Warn(content string) error {
	return e.emit(SeverityWarning, "", content)
}

// Alert emits an alert entry stamped with the current UTC time.
func (e *Engine) Alert(content string) error {
	return e.emit(SeverityAlert, "", content)
}

// InformAt emits an informational entry with a caller supplied timestamp.
// An empty timestamp means now.
func (e *Engine) InformAt(timestamp, content string) error {
	return e.emit(SeverityInfo, timestamp, content)
}

// WarnAt emits a warning entry with a caller supplied timestamp.
func (e *Engine) WarnAt(timestamp, content string) error {
	return e.emit(SeverityWarning, timestamp, content)
}

// AlertAt emits an alert entry with a caller supplied timestamp.
func (e *Engine) AlertAt(timestamp, content string) error {
	return e.emit(SeverityAlert, timestamp, content)
}

func (e *Engine) emit(flag Severity, timestamp, content string) error {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enabledLocked(flag) {
		return nil
	}

	if timestamp == "" {
		timestamp = e.now().UTC().Format(consts.TimestampLayout)
	}
	entry := timestamp + consts.EntrySeparator + content + e.eol

	switch e.mode {
	case ModeConsole:
		if err := e.streamFor(flag).Println(entry); err != nil {
			return fmt.Errorf("timedlog: write console: %w", err)
		}
	case ModeFile:
		if e.file == nil {
			return ErrFileClosed
		}
		if _, err := io.WriteString(e.file, entry); err != nil {
			return fmt.Errorf("timedlog: write %s: %w", e.file.Name(), err)
		}
	}
	return nil
}

func (e *Engine) streamFor(flag Severity) *console.Stream {
	switch flag {
	case SeverityWarning:
		return e.console.Warning
	case SeverityAlert:
		return e.console.Error
	default:
		return e.console.Info
	}
}

func (e *Engine) enabledLocked(flag Severity) bool {
	return e.mode != ModeNone && e.mask.Has(flag)
}

// Enabled reports whether entries of the given severity are currently emitted.
func (e *Engine) Enabled(flag Severity) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enabledLocked(flag)
}

// Mode returns the active output mode.
func (e *Engine) Mode() Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// Severity returns the active severity mask.
func (e *Engine) Severity() Severity {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mask
}

// FilePath returns the path of the open log file, or "" when none is open.
func (e *Engine) FilePath() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.path
}
