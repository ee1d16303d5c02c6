package ports

import "context"

// Transport moves newline-delimited messages between the server and its
// peer.
type Transport interface {
	// Read returns the next line without its delimiter. It returns io.EOF
	// once the peer closes the stream.
	Read(ctx context.Context) ([]byte, error)

	// Write sends one message followed by a newline.
	Write(ctx context.Context, data []byte) error

	// Close releases the underlying streams.
	Close() error
}
