// Package testutil provides testing utilities for the Riot client.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"time"
)

// MockResponse defines the behavior for a mock upstream endpoint.
type MockResponse struct {
	StatusCode int
	Body       string
	Headers    map[string]string
	Delay      time.Duration
}

// MockRiot is a configurable mock Riot API server for testing. The client's
// BaseURL format string makes every routing value resolve to this server.
type MockRiot struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]func(w http.ResponseWriter, r *http.Request)

	// Tracking
	requestCount map[string]int
	lastHeader   http.Header
}

// NewMockRiot creates a new mock upstream server.
func NewMockRiot() *MockRiot {
	mock := &MockRiot{
		handlers:     make(map[string]func(w http.ResponseWriter, r *http.Request)),
		requestCount: make(map[string]int),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.requestCount[r.URL.Path]++
		mock.lastHeader = r.Header.Clone()
		mock.mu.Unlock()

		mock.mu.RLock()
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.RUnlock()

		if exists {
			handler(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status":{"message":"Data not found","status_code":404}}`))
	}))

	return mock
}

// BaseURL returns the server URL as a client BaseURL format string; the
// routing value is ignored so platform and region hosts both land here.
func (m *MockRiot) BaseURL() string {
	return m.server.URL + "%.0s"
}

// Close shuts down the mock server.
func (m *MockRiot) Close() {
	m.server.Close()
}

// SetHandler sets a custom handler for a specific path.
func (m *MockRiot) SetHandler(path string, handler func(w http.ResponseWriter, r *http.Request)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetResponse configures a fixed response for a path.
func (m *MockRiot) SetResponse(path string, resp MockResponse) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		if resp.Delay > 0 {
			time.Sleep(resp.Delay)
		}
		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
		}
		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			w.Write([]byte(resp.Body))
		}
	})
}

// SetJSON configures a 200 OK JSON response for a path.
func (m *MockRiot) SetJSON(path, body string) {
	m.SetResponse(path, MockResponse{StatusCode: http.StatusOK, Body: body})
}

// FailThenSucceed configures a path to return failStatus for the first n
// requests and a 200 OK body afterwards.
func (m *MockRiot) FailThenSucceed(path string, n int, failStatus int, body string) {
	var mu sync.Mutex
	count := 0
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		count++
		failing := count <= n
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if failing {
			w.WriteHeader(failStatus)
			w.Write([]byte(`{"status":{"message":"error"}}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	})
}

// RequestCount returns the number of requests made to a path.
func (m *MockRiot) RequestCount(path string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.requestCount[path]
}

// TotalRequests returns the number of requests made to any path.
func (m *MockRiot) TotalRequests() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := 0
	for _, n := range m.requestCount {
		total += n
	}
	return total
}

// LastHeader returns the headers of the most recent request.
func (m *MockRiot) LastHeader() http.Header {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastHeader
}
