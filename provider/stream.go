package provider

import (
	"context"
	"errors"
	"io"
)

// StreamResponse is a lazy sequence of opaque byte chunks, one chunk per
// transport frame. Any element may fail; a failure or io.EOF is terminal and
// releases the underlying transport resources.
type StreamResponse interface {
	// Next returns the next chunk of the response.
	// io.EOF signals the normal end of the stream.
	Next(ctx context.Context) ([]byte, error)
	// Close drops the stream and releases the underlying connection or
	// operation slot. It is idempotent and safe after Next returned an error.
	Close() error
}

// ReadAll drains a stream to the end and closes it.
func ReadAll(ctx context.Context, stream StreamResponse) ([][]byte, error) {
	defer func() {
		_ = stream.Close()
	}()

	var chunks [][]byte
	for {
		chunk, err := stream.Next(ctx)
		if errors.Is(err, io.EOF) {
			return chunks, nil
		}
		if err != nil {
			return chunks, err
		}
		chunks = append(chunks, chunk)
	}
}
