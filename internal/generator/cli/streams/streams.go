package streams

import (
	"io"

	"github.com/moby/term"

	"github.com/mimesis-go/mimesis/internal/generator/cli/utils"
)

// stream keeps terminal info of wrapped file descriptor.
type stream struct {
	fd         uintptr
	isTerminal bool
}

func newStream(v any) stream {
	fd, isTerminal := term.GetFdInfo(v)

	return stream{fd: fd, isTerminal: isTerminal}
}

// IsTerminal returns true if this stream is connected to a terminal.
func (s stream) IsTerminal() bool {
	return s.isTerminal
}

// FD returns file descriptor of the stream, zero if it has none.
func (s stream) FD() uintptr {
	return s.fd
}

// In is an input stream to read user input. It implements [io.ReadCloser].
type In struct {
	stream
	io.ReadCloser
}

// NewIn returns a new [In] from an [io.Reader].
func NewIn(in io.Reader) *In {
	readCloser, ok := in.(io.ReadCloser)
	if !ok {
		readCloser = utils.DummyReadWriteCloser{Reader: in}
	}

	return &In{stream: newStream(in), ReadCloser: readCloser}
}

// Out is an output stream to write normal program output. It implements [io.WriteCloser].
type Out struct {
	stream
	io.WriteCloser
}

// NewOut returns a new [Out] from an [io.Writer].
func NewOut(out io.Writer) *Out {
	writeCloser, ok := out.(io.WriteCloser)
	if !ok {
		writeCloser = utils.DummyReadWriteCloser{Writer: out}
	}

	return &Out{stream: newStream(out), WriteCloser: writeCloser}
}
