package client

import (
	"bytes"
	"context"
	"io"

	"github.com/bytedance/sonic"
	"github.com/drpcorg/chainquery/provider"
	"github.com/drpcorg/chainquery/types"
)

// GetStatus probes the service health and returns a typed record stream
// decoded from the newline delimited json body.
func (c *Client[T]) GetStatus(ctx context.Context) (*StatusStream, error) {
	stream, err := c.inner.GetStatusByFormat(ctx, types.FormatJsonStream)
	if err != nil {
		return nil, err
	}
	return newStatusStream(stream), nil
}

// StatusStream decodes status records off a raw chunk stream. Records may
// span chunk boundaries and several records may share one chunk. A malformed
// record yields a decode error without terminating the stream; the next call
// resumes after the bad line.
type StatusStream struct {
	stream  provider.StreamResponse
	residue []byte
	eof     bool
}

func newStatusStream(stream provider.StreamResponse) *StatusStream {
	return &StatusStream{stream: stream}
}

func (s *StatusStream) Next(ctx context.Context) (*types.Status, error) {
	for {
		if line, ok := s.nextLine(); ok {
			return decodeStatus(line)
		}
		if s.eof {
			// the last record may lack a trailing newline
			if line := bytes.TrimSpace(s.residue); len(line) > 0 {
				s.residue = nil
				return decodeStatus(line)
			}
			return nil, io.EOF
		}

		chunk, err := s.stream.Next(ctx)
		if err == io.EOF {
			s.eof = true
			continue
		}
		if err != nil {
			return nil, err
		}
		s.residue = append(s.residue, chunk...)
	}
}

func (s *StatusStream) nextLine() ([]byte, bool) {
	for {
		idx := bytes.IndexByte(s.residue, '\n')
		if idx < 0 {
			return nil, false
		}
		line := bytes.TrimSpace(s.residue[:idx])
		s.residue = s.residue[idx+1:]
		if len(line) > 0 {
			return line, true
		}
	}
}

func decodeStatus(line []byte) (*types.Status, error) {
	var status types.Status
	if err := sonic.Unmarshal(line, &status); err != nil {
		return nil, provider.DecodeError(err)
	}
	return &status, nil
}

func (s *StatusStream) Close() error {
	return s.stream.Close()
}
