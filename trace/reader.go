package trace

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/phanxgames/presskit"
)

// ErrNoHeader is returned when a trace does not start with a header record.
var ErrNoHeader = errors.New("trace: missing header")

// Reader iterates the frames of a trace.
type Reader struct {
	closer  io.Closer
	decoder *cbor.Decoder
	header  Header
}

// NewReader reads the header from r and returns a reader positioned at the
// first frame.
func NewReader(r io.Reader) (*Reader, error) {
	rd := &Reader{decoder: newDecoder(r)}
	if c, ok := r.(io.Closer); ok {
		rd.closer = c
	}
	var rec Record
	if err := rd.decoder.Decode(&rec); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHeader
		}
		return nil, fmt.Errorf("read trace header: %w", err)
	}
	if rec.Header == nil {
		return nil, ErrNoHeader
	}
	if rec.Header.Version != Version {
		return nil, fmt.Errorf("read trace header: unsupported version %d", rec.Header.Version)
	}
	rd.header = *rec.Header
	return rd, nil
}

// Open opens the trace file at path.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trace: %w", err)
	}
	r, err := NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return r, nil
}

// Header returns the trace header.
func (r *Reader) Header() Header {
	return r.header
}

// Next returns the next frame. Returns io.EOF when no more frames are
// available.
func (r *Reader) Next() (Frame, error) {
	for {
		var rec Record
		if err := r.decoder.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				return Frame{}, io.EOF
			}
			return Frame{}, fmt.Errorf("read trace frame: %w", err)
		}
		if rec.Frame != nil {
			return *rec.Frame, nil
		}
		// Headers after the first are skipped.
	}
}

// ReadAll returns every remaining frame.
func (r *Reader) ReadAll() ([]Frame, error) {
	var frames []Frame
	for {
		f, err := r.Next()
		if errors.Is(err, io.EOF) {
			return frames, nil
		}
		if err != nil {
			return frames, err
		}
		frames = append(frames, f)
	}
}

// Close closes the underlying reader if it is an io.Closer.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// Replay queues the recorded pose of hand h (matched by h.Name) for every
// frame onto h's injection queue: a tracked sample becomes a pose, anything
// else a lift. It returns the number of frames queued.
func Replay(h *presskit.Hand, frames []Frame) int {
	n := 0
	for i := range frames {
		rec, ok := frames[i].Hand(h.Name)
		if ok && rec.Present && rec.Tracked {
			h.InjectPose(rec.Fingertip)
		} else {
			h.InjectLift()
		}
		n++
	}
	return n
}
