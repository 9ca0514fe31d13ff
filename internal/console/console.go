package console

import (
	"io"
	"os"

	"github.com/pterm/pterm"
)

// Stream writes one entry per line to a console writer.
// A nil style leaves the entry untouched.
type Stream struct {
	writer   io.Writer
	fallback func() io.Writer
	style    *pterm.Style
}

// NewStream creates a Stream bound to w.
func NewStream(w io.Writer, style *pterm.Style) *Stream {
	return &Stream{writer: w, style: style}
}

// Println writes entry followed by a newline.
func (s *Stream) Println(entry string) error {
	line := entry
	if s.style != nil {
		line = s.style.Sprint(entry)
	}
	_, err := io.WriteString(s.Writer(), line+"\n")
	return err
}

// Writer returns the underlying writer. Streams bound to a standard stream
// resolve it on every call, so a replaced os.Stdout or os.Stderr is honored.
func (s *Stream) Writer() io.Writer {
	if s.writer == nil && s.fallback != nil {
		return s.fallback()
	}
	return s.writer
}

// Console groups the three streams used for informational, warning and
// error entries.
type Console struct {
	Info    *Stream
	Warning *Stream
	Error   *Stream
}

func stdout() io.Writer { return os.Stdout }
func stderr() io.Writer { return os.Stderr }

// New creates a Console writing informational entries to out and
// warnings/errors to errOut. Nil writers mean os.Stdout and os.Stderr.
// With color enabled the pterm default theme message styles are applied.
func New(out, errOut io.Writer, color bool) *Console {
	var info, warn, alert *pterm.Style
	if color {
		info = &pterm.ThemeDefault.InfoMessageStyle
		warn = &pterm.ThemeDefault.WarningMessageStyle
		alert = &pterm.ThemeDefault.ErrorMessageStyle
	}

	return &Console{
		Info:    &Stream{writer: out, fallback: stdout, style: info},
		Warning: &Stream{writer: errOut, fallback: stderr, style: warn},
		Error:   &Stream{writer: errOut, fallback: stderr, style: alert},
	}
}
