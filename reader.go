package flatfile

import (
	"bufio"
	"io"
)

const defaultBufferSize = 1 << 10 // 1024 bytes

// Reader reads fixed-width records line by line from an io.Reader.
type Reader struct {
	src   *bufio.Reader
	codec *Codec

	bufErr   error
	text     string
	finished bool
	line     int
}

// NewReader creates a Reader that parses lines from r with codec, panicking if either is nil.
func NewReader(r io.Reader, codec *Codec) *Reader {
	if r == nil {
		panic("flatfile: reader source cannot be nil")
	}
	if codec == nil {
		panic("flatfile: reader codec cannot be nil")
	}
	return &Reader{
		src:   bufio.NewReaderSize(r, defaultBufferSize),
		codec: codec,
	}
}

// Read parses the next non-blank line. It returns io.EOF once the input is exhausted.
// Lines are numbered from 1 and blank lines count towards the numbering.
func (r *Reader) Read() (*Record, error) {
	if r == nil || r.src == nil {
		return nil, io.EOF
	}

	for {
		if r.finished {
			return nil, io.EOF
		}
		if r.bufErr != nil {
			err := r.bufErr
			r.bufErr = nil
			r.finished = true
			return nil, err
		}

		text, err := r.src.ReadString('\n')
		if len(text) == 0 && err != nil {
			r.finished = true
			return nil, err
		}
		r.line++
		if err == io.EOF {
			// Final line without terminator: return it, then report EOF.
			r.finished = true
		} else if err != nil {
			r.bufErr = err
		}

		r.text = trimEOL(text)
		rec, perr := r.codec.Parse(r.text, r.line)
		if perr != nil {
			return nil, perr
		}
		if rec == nil {
			r.codec.pipe.logger.Debug().Int("line", r.line).Msg("skipping blank line")
			continue
		}
		return rec, nil
	}
}

// ReadAll exhausts the reader, returning every record and the first non-EOF error.
func (r *Reader) ReadAll() (records []*Record, err error) {
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}

// Text returns the line, terminator stripped, that produced the most recent record or error.
func (r *Reader) Text() string { return r.text }

// Line returns the number of lines consumed so far.
func (r *Reader) Line() int { return r.line }
