package utils

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

type Header struct {
	Key   string
	Value string
}

// MakeHeadersRequest - Improve the stupid http.Post/http.Get format: one call,
// any method, any headers, tied to the request ctx. Does not close body.
func MakeHeadersRequest(ctx context.Context, method string, url string, body io.Reader, client *http.Client, headers ...Header) (*http.Response, error) {
	if client == nil {
		return nil, fmt.Errorf("nil http client")
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	for _, header := range headers {
		req.Header.Set(header.Key, header.Value)
	}

	return client.Do(req)
}
