package driven

import (
	"context"
	"errors"
	"fmt"

	"github.com/ericfisherdev/portfolio/internal/domain/model"
)

// Sentinel errors describing why the project list could not be produced.
var (
	// ErrNetworkFailure indicates the request never produced a response.
	ErrNetworkFailure = errors.New("network failure")

	// ErrHTTPStatus indicates the API answered with a non-2xx status.
	ErrHTTPStatus = errors.New("unexpected http status")

	// ErrPayload indicates the response body could not be decoded.
	ErrPayload = errors.New("malformed payload")

	// ErrMissingContainer indicates the mount point for project cards is absent.
	ErrMissingContainer = errors.New("projects container not found")
)

// HTTPStatusError carries the status code of a rejected response.
// It matches ErrHTTPStatus under errors.Is.
type HTTPStatusError struct {
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("github api error: %d", e.StatusCode)
}

// Is reports ErrHTTPStatus as the error's kind.
func (e *HTTPStatusError) Is(target error) bool {
	return target == ErrHTTPStatus
}

// RepositoryLister defines the driven port for reading an account's
// repositories from the hosting API. One call issues one request and
// returns the records of the first page in API order.
type RepositoryLister interface {
	ListRepositories(ctx context.Context, account string) ([]model.Repository, error)
}
