package fetcher

import "fmt"

type Reason string

const (
	ReasonNetwork    Reason = "network"
	ReasonHTTPStatus Reason = "http-status"
	ReasonTimeout    Reason = "timeout"
)

// FetchError classifies a failed page request. Callers treat any FetchError
// as the end of a category's pages rather than a fatal condition.
type FetchError struct {
	URL        string
	Reason     Reason
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Reason == ReasonHTTPStatus {
		return fmt.Sprintf("fetch %s failed: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s failed (%s): %v", e.URL, e.Reason, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
