package fetcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

type Options struct {
	UserAgent string
	Timeout   time.Duration
	DelayMin  time.Duration
	DelayMax  time.Duration
	Retries   int
}

// Fetcher downloads listing and author pages. All requests go through a
// single pacer that enforces a randomized pause between consecutive
// requests across every worker, so concurrency never multiplies the
// request rate seen by the remote site.
type Fetcher struct {
	client   *resty.Client
	delayMin time.Duration
	delayMax time.Duration

	mu   sync.Mutex
	last time.Time
}

func New(opts Options) *Fetcher {
	client := resty.New()
	client.SetTimeout(opts.Timeout)
	client.SetHeader("User-Agent", opts.UserAgent)
	client.SetHeader("Accept", "text/html,application/xhtml+xml")
	client.SetRetryCount(opts.Retries)
	client.SetRetryWaitTime(2 * time.Second)
	client.SetRetryMaxWaitTime(5 * time.Second)

	return &Fetcher{
		client:   client,
		delayMin: opts.DelayMin,
		delayMax: opts.DelayMax,
	}
}

// Fetch downloads one page of a paginated listing. Page 1 uses the URL as
// given, later pages add a "page" query parameter. A nil error guarantees
// an HTTP 200 response body.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string, page int) ([]byte, error) {
	target, err := buildPageURL(pageURL, page)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Reason: ReasonNetwork, Err: err}
	}

	if err := f.pace(ctx); err != nil {
		return nil, err
	}

	slog.Debug("Fetching page", "url", target, "page", page)

	resp, err := f.client.R().SetContext(ctx).Get(target)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, ctx.Err()
		}
		return nil, &FetchError{URL: target, Reason: classifyReason(err), Err: err}
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, &FetchError{URL: target, Reason: ReasonHTTPStatus, StatusCode: resp.StatusCode()}
	}

	return resp.Body(), nil
}

// pace blocks until the randomized inter-request delay since the previous
// request has elapsed. The lock is held through the wait, which serializes
// all outbound requests.
func (f *Fetcher) pace(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delay := f.delayMin
	if f.delayMax > f.delayMin {
		delay += time.Duration(rand.Int63n(int64(f.delayMax - f.delayMin + 1)))
	}

	if wait := time.Until(f.last.Add(delay)); wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	f.last = time.Now()
	return nil
}

func buildPageURL(pageURL string, page int) (string, error) {
	if page <= 1 {
		return pageURL, nil
	}

	parsed, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("invalid page URL %q: %w", pageURL, err)
	}

	query := parsed.Query()
	query.Set("page", strconv.Itoa(page))
	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}

func classifyReason(err error) Reason {
	if errors.Is(err, context.DeadlineExceeded) {
		return ReasonTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ReasonTimeout
	}
	return ReasonNetwork
}
