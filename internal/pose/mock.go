package pose

import "context"

// MockEstimator is a test implementation of the Estimator interface.
// It allows tests to control the returned stream.
type MockEstimator struct {
	streams map[string]*Stream
	err     error
}

// NewMockEstimator creates a new MockEstimator instance.
func NewMockEstimator() *MockEstimator {
	return &MockEstimator{
		streams: make(map[string]*Stream),
	}
}

// SetStream sets the stream that will be returned for a source.
func (m *MockEstimator) SetStream(source string, s *Stream) {
	m.streams[source] = s
}

// SetError sets the error that will be returned by EstimateStream.
func (m *MockEstimator) SetError(err error) {
	m.err = err
}

// EstimateStream returns the pre-configured stream or error. An unknown
// source yields an empty stream.
func (m *MockEstimator) EstimateStream(_ context.Context, source string) (*Stream, error) {
	if m.err != nil {
		return nil, m.err
	}
	if s, ok := m.streams[source]; ok {
		return s, nil
	}
	return &Stream{Source: source, FPS: 30}, nil
}

// Close is a no-op for the mock estimator.
func (m *MockEstimator) Close() error {
	return nil
}
