package backend

import (
	"bufio"
	"io"
	"strconv"

	"github.com/dshills/termracer/internal/renderer/core"
)

var (
	csi       = []byte("\x1b[")
	sgrFgDef  = []byte("\x1b[39m")
	sgrBgDef  = []byte("\x1b[49m")
	sgrReset  = []byte("\x1b[0m")
	sgrFgTrue = []byte("\x1b[38;2;")
	sgrBgTrue = []byte("\x1b[48;2;")
	sgrFg256  = []byte("\x1b[38;5;")
	sgrBg256  = []byte("\x1b[48;5;")
)

// ANSIWriter is a Sink that writes raw ANSI escape sequences to an
// io.Writer. Output is buffered until Flush.
//
// It is an output-only sink: it reads no input and does not put the
// terminal into raw mode, so it cannot stand in for Terminal as a race
// backend. Use it to render a Window into a byte stream, for example to
// capture frames in tests or to embed the compositor in another program.
type ANSIWriter struct {
	w *bufio.Writer
}

// NewANSIWriter creates a sink writing to w.
func NewANSIWriter(w io.Writer) *ANSIWriter {
	return &ANSIWriter{w: bufio.NewWriterSize(w, 32*1024)}
}

// MoveTo emits CUP; terminal rows and columns are 1-based.
func (a *ANSIWriter) MoveTo(row, col int) error {
	var buf [32]byte
	b := append(buf[:0], csi...)
	b = strconv.AppendInt(b, int64(row+1), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(col+1), 10)
	b = append(b, 'H')
	_, err := a.w.Write(b)
	return err
}

func (a *ANSIWriter) SetForeground(c core.Color) error {
	return a.writeColor(c, sgrFgDef, sgrFg256, sgrFgTrue)
}

func (a *ANSIWriter) SetBackground(c core.Color) error {
	return a.writeColor(c, sgrBgDef, sgrBg256, sgrBgTrue)
}

func (a *ANSIWriter) writeColor(c core.Color, def, indexed, truecolor []byte) error {
	if c.IsDefault() {
		_, err := a.w.Write(def)
		return err
	}

	var buf [32]byte
	var b []byte
	if c.Indexed {
		b = append(buf[:0], indexed...)
		b = strconv.AppendInt(b, int64(c.R), 10)
	} else {
		b = append(buf[:0], truecolor...)
		b = strconv.AppendInt(b, int64(c.R), 10)
		b = append(b, ';')
		b = strconv.AppendInt(b, int64(c.G), 10)
		b = append(b, ';')
		b = strconv.AppendInt(b, int64(c.B), 10)
	}
	b = append(b, 'm')
	_, err := a.w.Write(b)
	return err
}

func (a *ANSIWriter) Print(s string) error {
	_, err := a.w.WriteString(s)
	return err
}

// Reset emits SGR 0, restoring default colors.
func (a *ANSIWriter) Reset() error {
	_, err := a.w.Write(sgrReset)
	return err
}

// Flush writes any buffered output to the underlying writer.
func (a *ANSIWriter) Flush() error {
	return a.w.Flush()
}
