package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
)

// HTTPStatusError reports an unexpected HTTP response status.
type HTTPStatusError struct {
	URL        string
	Method     string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d %s",
		e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// HTTP reads a remote resource with byte-range requests.
//
// The size comes from the Content-Length of a HEAD request. Servers that
// ignore the Range header and answer 200 are tolerated; the requested
// window is cut out of the full body.
type HTTP struct {
	url    string
	client *http.Client

	mu   sync.Mutex
	size int64
	open bool
}

// NewHTTP returns a Reader for url. A nil client uses http.DefaultClient.
func NewHTTP(url string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{url: url, client: client}
}

// Name returns the URL.
func (s *HTTP) Name() string { return s.url }

// Open issues a HEAD request and reports Content-Length.
func (s *HTTP) Open(ctx context.Context) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, s.url, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("HEAD %s: %w", s.url, err)
	}
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, &HTTPStatusError{URL: s.url, Method: http.MethodHead, StatusCode: resp.StatusCode}
	}
	if resp.ContentLength < 0 {
		return 0, fmt.Errorf("HEAD %s: no Content-Length in response", s.url)
	}

	s.mu.Lock()
	s.size, s.open = resp.ContentLength, true
	s.mu.Unlock()

	return resp.ContentLength, nil
}

// Read fetches up to length bytes at position with a Range request.
func (s *HTTP) Read(ctx context.Context, length int, position int64) ([]byte, error) {
	s.mu.Lock()
	size, open := s.size, s.open
	s.mu.Unlock()

	if !open {
		return nil, fmt.Errorf("read %s: not open", s.url)
	}
	if position < 0 {
		return nil, fmt.Errorf("negative position %d", position)
	}
	if length <= 0 || position >= size {
		return []byte{}, nil
	}
	end := min(position+int64(length), size) - 1

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Range", fmt.Sprintf("bytes=%d-%d", position, end))

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	want := end - position + 1
	switch resp.StatusCode {
	case http.StatusPartialContent:
	case http.StatusOK:
		// Range ignored: skip to the window in the full body
		if _, err := io.CopyN(io.Discard, resp.Body, position); err != nil {
			if errors.Is(err, io.EOF) {
				return []byte{}, nil
			}
			return nil, fmt.Errorf("GET %s: %w", s.url, err)
		}
	default:
		return nil, &HTTPStatusError{URL: s.url, Method: http.MethodGet, StatusCode: resp.StatusCode}
	}

	buf, err := io.ReadAll(io.LimitReader(resp.Body, want))
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", s.url, err)
	}
	return buf, nil
}

// Close marks the reader closed. Idle connections stay with the client.
func (s *HTTP) Close() error {
	s.mu.Lock()
	s.open = false
	s.mu.Unlock()
	return nil
}
