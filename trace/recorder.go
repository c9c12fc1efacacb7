package trace

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"github.com/phanxgames/presskit"
)

// Recorder writes scene frames as CBOR records. It implements
// presskit.FrameObserver.
type Recorder struct {
	closer    io.Closer
	encoder   *cbor.Encoder
	sessionID uuid.UUID
	frames    int
	err       error
	closed    bool
}

// NewRecorder writes a header to w and returns a recorder appending frames
// to it.
func NewRecorder(w io.Writer) (*Recorder, error) {
	r := &Recorder{
		encoder:   newEncoder(w),
		sessionID: uuid.New(),
	}
	if c, ok := w.(io.Closer); ok {
		r.closer = c
	}
	hdr := &Header{
		SessionID: r.sessionID.String(),
		Started:   time.Now().UTC(),
		Version:   Version,
	}
	if err := r.encoder.Encode(Record{Header: hdr}); err != nil {
		return nil, fmt.Errorf("write trace header: %w", err)
	}
	return r, nil
}

// Create truncates or creates the file at path and records into it.
func Create(path string) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create trace: %w", err)
	}
	r, err := NewRecorder(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return r, nil
}

// SessionID returns the UUID written in the header.
func (r *Recorder) SessionID() uuid.UUID {
	return r.sessionID
}

// Frames returns the number of frames written.
func (r *Recorder) Frames() int {
	return r.frames
}

// ObserveFrame writes one frame record. After the first write error the
// recorder stops writing; the error is reported by Err and Close.
func (r *Recorder) ObserveFrame(snap *presskit.FrameSnapshot) {
	if r.closed || r.err != nil {
		return
	}
	if err := r.encoder.Encode(Record{Frame: frameFromSnapshot(snap)}); err != nil {
		r.err = fmt.Errorf("write trace frame %d: %w", snap.Index, err)
		return
	}
	r.frames++
}

// Err returns the first write error.
func (r *Recorder) Err() error {
	return r.err
}

// Close closes the underlying writer if it is an io.Closer.
// It is safe to call Close multiple times.
func (r *Recorder) Close() error {
	if r.closed {
		return r.err
	}
	r.closed = true
	if r.closer != nil {
		if err := r.closer.Close(); err != nil && r.err == nil {
			r.err = fmt.Errorf("close trace: %w", err)
		}
	}
	return r.err
}

// Compile-time interface satisfaction check.
var _ presskit.FrameObserver = (*Recorder)(nil)
