package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"go-botadmin/pkg/e"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

const contentTypeJSON = "application/json"

// Endpoint is where a client sends its requests.
type Endpoint struct {
	Scheme string
	Host   string
}

// DoRequest issues a single request and returns the response unread. The
// caller closes the body. A non-nil body is sent as JSON.
func DoRequest(ctx context.Context, client *http.Client, method string, endpoint Endpoint, path string,
	query url.Values, body []byte, header http.Header) (*http.Response, error) {
	u := url.URL{
		Scheme:   endpoint.Scheme,
		Host:     endpoint.Host,
		Path:     path,
		RawQuery: query.Encode(),
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, e.With(e.ErrMakeRequest, err)
	}

	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}

	slog.Debug("Sending request",
		slog.String("method", method),
		slog.String("url", u.String()))

	resp, err := client.Do(req)
	if err != nil {
		return nil, e.With(e.ErrDoRequest, err)
	}

	return resp, nil
}

// PostJSON marshals payload and POSTs it.
func PostJSON(ctx context.Context, client *http.Client, endpoint Endpoint, path string,
	payload any, header http.Header) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error(
			e.ErrMarshalJSON.Error(),
			slog.String("error", err.Error()))

		return nil, e.With(e.ErrMarshalJSON, err)
	}

	return DoRequest(ctx, client, http.MethodPost, endpoint, path, nil, body, header)
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func closeBody(resp *http.Response) {
	if errClose := resp.Body.Close(); errClose != nil {
		slog.Error(
			e.ErrCloseBody.Error(),
			slog.String("error", errClose.Error()))
	}
}
