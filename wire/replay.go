package wire

import (
	"bufio"
	"encoding/binary"
	"io"
	"sync"

	"github.com/mo-shahab/pong-sim/game"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// MaxFrameSize bounds a single replay frame.
const MaxFrameSize = 1 << 20

// ErrFrameTooLarge is returned by Reader.Next for an oversized frame.
var ErrFrameTooLarge = errors.New("replay frame too large")

// Recorder writes snapshots as length-delimited frames. It implements
// game.Sink so it can be handed straight to an engine.
type Recorder struct {
	mu     sync.Mutex
	w      *bufio.Writer
	closer io.Closer
	buf    []byte
	frames int
}

var _ game.Sink = (*Recorder)(nil)

// NewRecorder wraps w. If w is also an io.Closer, Close closes it.
func NewRecorder(w io.Writer) *Recorder {
	r := &Recorder{w: bufio.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		r.closer = c
	}
	return r
}

// Publish appends one frame.
func (r *Recorder) Publish(s game.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg := Marshal(s)
	r.buf = protowire.AppendBytes(r.buf[:0], msg)
	if _, err := r.w.Write(r.buf); err != nil {
		return errors.Wrapf(err, "write frame %d", r.frames)
	}
	r.frames++
	return nil
}

// Frames returns how many frames have been written.
func (r *Recorder) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

func (r *Recorder) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.w.Flush()
}

// Close flushes buffered frames and closes the underlying writer if it can.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.w.Flush(); err != nil {
		return errors.Wrap(err, "flush replay")
	}
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

// Reader reads frames written by a Recorder.
type Reader struct {
	r *bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Next returns the next snapshot, or io.EOF at a clean end of stream.
func (r *Reader) Next() (game.Snapshot, error) {
	size, err := binary.ReadUvarint(r.r)
	if err != nil {
		if err == io.EOF {
			return game.Snapshot{}, io.EOF
		}
		return game.Snapshot{}, errors.Wrap(err, "read frame length")
	}
	if size > MaxFrameSize {
		return game.Snapshot{}, errors.Wrapf(ErrFrameTooLarge, "%d bytes", size)
	}

	frame := make([]byte, size)
	if _, err := io.ReadFull(r.r, frame); err != nil {
		return game.Snapshot{}, errors.Wrap(err, "read frame")
	}
	return Unmarshal(frame)
}

// ReadAll reads every remaining frame.
func ReadAll(r io.Reader) ([]game.Snapshot, error) {
	rd := NewReader(r)
	var out []game.Snapshot
	for {
		s, err := rd.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, s)
	}
}
