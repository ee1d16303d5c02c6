// Package transport moves newline-delimited messages over a pair of byte
// streams, normally the process's stdin and stdout.
package transport

import (
	"bufio"
	"context"
	"errors"
	"io"
	"sync"

	"github.com/harshapalnati/raworc-mcpserver/pkg/raworc/ports"
	"github.com/harshapalnati/raworc-mcpserver/pkg/raworcerrs"
)

// readBufferSize is the initial buffer size; longer lines still read whole.
const readBufferSize = 64 * 1024

var _ ports.Transport = (*StdioTransport)(nil)

// StdioTransport reads one message per line from in and writes one message
// per line to out.
type StdioTransport struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader

	writeMu sync.Mutex
	closeMu sync.Mutex
	closed  bool
}

// NewStdioTransport creates a transport over in and out.
func NewStdioTransport(in io.Reader, out io.Writer) *StdioTransport {
	return &StdioTransport{
		in:     in,
		out:    out,
		reader: bufio.NewReaderSize(in, readBufferSize),
	}
}

// Read returns the next line without its trailing newline. A final line
// that is not newline-terminated is returned together with io.EOF.
func (t *StdioTransport) Read(ctx context.Context) ([]byte, error) {
	type result struct {
		data []byte
		err  error
	}
	resultChan := make(chan result, 1)

	go func() {
		line, err := t.reader.ReadBytes('\n')
		line = trimNewline(line)
		switch {
		case err == nil:
			resultChan <- result{line, nil}
		case errors.Is(err, io.EOF):
			resultChan <- result{line, io.EOF}
		default:
			resultChan <- result{nil, raworcerrs.NewTransportError(
				raworcerrs.ErrCodeReadFailed,
				"reading message",
				err,
			)}
		}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-resultChan:
		return res.data, res.err
	}
}

// Write writes data followed by a newline. Concurrent writes never
// interleave.
func (t *StdioTransport) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	message := make([]byte, 0, len(data)+1)
	message = append(message, data...)
	message = append(message, '\n')

	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	if _, err := t.out.Write(message); err != nil {
		return raworcerrs.NewTransportError(
			raworcerrs.ErrCodeWriteFailed,
			"writing message",
			err,
		)
	}

	return nil
}

// Close closes whichever of the underlying streams are closable. It is safe
// to call more than once.
func (t *StdioTransport) Close() error {
	t.closeMu.Lock()
	defer t.closeMu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true

	var errs []error
	if c, ok := t.in.(io.Closer); ok {
		errs = append(errs, c.Close())
	}
	if c, ok := t.out.(io.Closer); ok {
		errs = append(errs, c.Close())
	}

	return errors.Join(errs...)
}

func trimNewline(line []byte) []byte {
	n := len(line)
	if n > 0 && line[n-1] == '\n' {
		n--
		if n > 0 && line[n-1] == '\r' {
			n--
		}
	}

	return line[:n]
}
