package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// TestMetricsRegistered verifies that all metrics are registered in the
// default registry without panicking.
func TestMetricsRegistered(t *testing.T) {
	// Seed each metric so it becomes visible to Gather.
	APIRequestsTotal.WithLabelValues("question.json", "2xx").Inc()
	APIRequestDuration.WithLabelValues("question.json").Observe(0.05)
	NotificationsTotal.WithLabelValues("ok").Inc()

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("unexpected gather error: %v", err)
	}

	expected := map[string]bool{
		"hubbridge_api_requests_total":           false,
		"hubbridge_api_request_duration_seconds": false,
		"hubbridge_notifications_total":          false,
	}

	for _, mf := range families {
		if _, ok := expected[mf.GetName()]; ok {
			expected[mf.GetName()] = true
		}
	}

	for name, seen := range expected {
		if !seen {
			t.Errorf("metric %s not registered", name)
		}
	}
}

func TestInstrumentedTransport_RecordsStatusClass(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := &http.Client{Transport: &InstrumentedTransport{}}

	before := counterValue(t, APIRequestsTotal, "answer.json", "4xx")

	resp, err := client.Post(srv.URL+"/services/v2/answer.json", "application/json", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	after := counterValue(t, APIRequestsTotal, "answer.json", "4xx")
	if after != before+1 {
		t.Errorf("counter = %v, want %v", after, before+1)
	}
}

func TestInstrumentedTransport_RecordsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := &http.Client{Transport: &InstrumentedTransport{}}

	before := counterValue(t, APIRequestsTotal, "comment.json", "error")

	if _, err := client.Post(srv.URL+"/services/v2/comment.json", "application/json", nil); err == nil {
		t.Fatal("expected network error")
	}

	after := counterValue(t, APIRequestsTotal, "comment.json", "error")
	if after != before+1 {
		t.Errorf("counter = %v, want %v", after, before+1)
	}
}

// counterValue reads the current value of one labelled counter.
func counterValue(t *testing.T, vec *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()

	var m dto.Metric
	c, err := vec.GetMetricWithLabelValues(labels...)
	if err != nil {
		t.Fatalf("getting metric: %v", err)
	}
	if err := c.Write(&m); err != nil {
		t.Fatalf("reading metric: %v", err)
	}
	return m.GetCounter().GetValue()
}
