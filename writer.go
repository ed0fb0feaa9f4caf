package flatfile

import (
	"bufio"
	"errors"
	"io"
)

var (
	errNilWriter      = errors.New("flatfile: writer is nil")
	errWriterNoTarget = errors.New("flatfile: writer destination cannot be nil")
	errNilRecord      = errors.New("flatfile: record is nil")
)

// Writer emits records as fixed-width lines through a buffer.
type Writer struct {
	dst *bufio.Writer

	// UseCRLF writes records terminated with \r\n when set.
	UseCRLF bool

	err error
}

// NewWriter creates a new buffered Writer.
func NewWriter(w io.Writer) *Writer {
	if w == nil {
		panic(errWriterNoTarget.Error())
	}
	return &Writer{dst: bufio.NewWriterSize(w, defaultBufferSize)}
}

// Reset updates the underlying writer while preserving the configuration flags.
func (w *Writer) Reset(dst io.Writer) {
	if w == nil {
		panic(errNilWriter.Error())
	}
	if dst == nil {
		panic(errWriterNoTarget.Error())
	}
	if w.dst == nil {
		w.dst = bufio.NewWriterSize(dst, defaultBufferSize)
	} else {
		w.dst.Reset(dst)
	}
	w.err = nil
}

// Write builds rec and emits it followed by the configured newline sequence.
// A formatter error is returned without poisoning the writer; I/O errors are sticky.
func (w *Writer) Write(rec *Record) error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	if w.err != nil {
		return w.err
	}
	if rec == nil {
		return errNilRecord
	}

	line, err := rec.Line()
	if err != nil {
		return err
	}
	if _, err := w.dst.WriteString(line); err != nil {
		w.err = err
		return err
	}

	if w.UseCRLF {
		if _, err := w.dst.Write([]byte{'\r', '\n'}); err != nil {
			w.err = err
			return err
		}
	} else {
		if err := w.dst.WriteByte('\n'); err != nil {
			w.err = err
			return err
		}
	}
	return nil
}

// WriteAll writes multiple records, stopping at the first error.
func (w *Writer) WriteAll(records []*Record) error {
	if w == nil {
		return errNilWriter
	}
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes pending buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	if w.err != nil {
		return w.err
	}
	if err := w.dst.Flush(); err != nil {
		w.err = err
		return err
	}
	return nil
}

// Error reports the first I/O error encountered by the writer.
func (w *Writer) Error() error {
	if w == nil {
		return errNilWriter
	}
	return w.err
}
