package observability

import (
	"net/http"
	"path"
	"strconv"
	"time"
)

// InstrumentedTransport is an http.RoundTripper that records per-request
// metrics before delegating to Base (http.DefaultTransport when nil).
//
// It captures:
//   - hubbridge_api_requests_total: per request, labelled with the endpoint
//     (last path element) and a status class like "2xx", or "error" when the
//     request never produced a response
//   - hubbridge_api_request_duration_seconds: duration of completed requests
//
// Inject it into the API client via NewClientWithHTTPClient; the client
// itself stays metric-free.
type InstrumentedTransport struct {
	Base http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *InstrumentedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	endpoint := path.Base(req.URL.Path)
	start := time.Now()

	resp, err := base.RoundTrip(req)
	if err != nil {
		APIRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return nil, err
	}

	statusClass := strconv.Itoa(resp.StatusCode/100) + "xx"
	APIRequestsTotal.WithLabelValues(endpoint, statusClass).Inc()
	APIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	return resp, nil
}
