package helpers

import (
	"bytes"
	"io"
)

type MockReadCloserState struct {
	WasClosed bool
	WasRead   bool
	reader    *bytes.Reader
}

/**
an io.ReadCloser over a fixed byte slice that remembers whether it was read and closed, for request bodies in tests
*/
type MockReadCloser struct {
	State *MockReadCloserState
}

func NewMockReadCloser(content []byte) MockReadCloser {
	return MockReadCloser{
		State: &MockReadCloserState{
			reader: bytes.NewReader(content),
		},
	}
}

func (c MockReadCloser) Close() error {
	c.State.WasClosed = true
	return nil
}

func (c MockReadCloser) Read(p []byte) (n int, err error) {
	if c.State.WasClosed {
		return 0, io.ErrClosedPipe
	}
	c.State.WasRead = true
	return c.State.reader.Read(p)
}
