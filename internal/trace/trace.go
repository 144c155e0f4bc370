// Package trace records arena runs as a stream of msgpack values: one
// Header followed by one snapshot per recorded frame.
package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tile-arena/internal/games/arena"
)

// Version is the format written by Recorder.
const Version = 1

// ErrBadHeader is returned when a stream does not start with a valid header.
var ErrBadHeader = errors.New("trace: bad header")

// Header describes the run a trace was taken from.
type Header struct {
	Version int     `msgpack:"v"`
	Mode    string  `msgpack:"mode"`
	Seed    int64   `msgpack:"seed"`
	DT      float64 `msgpack:"dt"`
}

// Recorder writes a trace.
type Recorder struct {
	bw     *bufio.Writer
	enc    *msgpack.Encoder
	frames int
}

// NewRecorder writes h to w and returns a recorder for the frames.
func NewRecorder(w io.Writer, h Header) (*Recorder, error) {
	bw := bufio.NewWriter(w)
	r := &Recorder{bw: bw, enc: msgpack.NewEncoder(bw)}
	h.Version = Version
	if err := r.enc.Encode(&h); err != nil {
		return nil, fmt.Errorf("trace: write header: %w", err)
	}
	return r, nil
}

// Record appends one snapshot.
func (r *Recorder) Record(snap arena.Snapshot) error {
	if err := r.enc.Encode(&snap); err != nil {
		return fmt.Errorf("trace: write frame %d: %w", r.frames, err)
	}
	r.frames++
	return nil
}

// Frames returns the number of snapshots recorded.
func (r *Recorder) Frames() int {
	return r.frames
}

// Flush writes buffered data to the underlying writer.
func (r *Recorder) Flush() error {
	if err := r.bw.Flush(); err != nil {
		return fmt.Errorf("trace: flush: %w", err)
	}
	return nil
}

// Reader reads a trace written by Recorder.
type Reader struct {
	dec    *msgpack.Decoder
	header Header
}

// NewReader reads and checks the header.
func NewReader(rd io.Reader) (*Reader, error) {
	dec := msgpack.NewDecoder(bufio.NewReader(rd))
	var h Header
	if err := dec.Decode(&h); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadHeader, err)
	}
	if h.Version != Version {
		return nil, fmt.Errorf("%w: version %d", ErrBadHeader, h.Version)
	}
	return &Reader{dec: dec, header: h}, nil
}

// Header returns the trace header.
func (r *Reader) Header() Header {
	return r.header
}

// Next returns the next snapshot, or io.EOF at the end of the stream.
func (r *Reader) Next() (arena.Snapshot, error) {
	var snap arena.Snapshot
	if err := r.dec.Decode(&snap); err != nil {
		if errors.Is(err, io.EOF) {
			return arena.Snapshot{}, io.EOF
		}
		return arena.Snapshot{}, fmt.Errorf("trace: read frame: %w", err)
	}
	return snap, nil
}

// ReadAll returns every remaining snapshot.
func (r *Reader) ReadAll() ([]arena.Snapshot, error) {
	var out []arena.Snapshot
	for {
		snap, err := r.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, snap)
	}
}
