package pose

import "context"

// Estimator defines the interface to the external pose-estimation
// collaborator. Implementations run a pose model over a source video and
// return the resulting landmark stream; this module never touches pixels
// itself.
type Estimator interface {
	// EstimateStream extracts the pose stream for the named source.
	// An empty stream is a valid result, not an error.
	EstimateStream(ctx context.Context, source string) (*Stream, error)

	// Close releases any resources held by the estimator.
	Close() error
}
