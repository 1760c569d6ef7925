package httpclient

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flaky answers 503 until the n-th request and 200 afterwards.
func flaky(n int32, calls *atomic.Int32) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < n {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
}

func TestNew(t *testing.T) {
	cases := []struct {
		name       string
		retryMax   int
		wantStatus int
		wantCalls  int32
	}{
		{name: "no retries by default", retryMax: 0, wantStatus: http.StatusServiceUnavailable, wantCalls: 1},
		{name: "eventually succeeds", retryMax: 5, wantStatus: http.StatusOK, wantCalls: 3},
		{name: "gives up", retryMax: 1, wantStatus: http.StatusServiceUnavailable, wantCalls: 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := flaky(3, &calls)
			defer srv.Close()

			client := New(Options{
				Timeout:  time.Second,
				RetryMax: tc.retryMax,
				waitMin:  time.Millisecond,
				waitMax:  2 * time.Millisecond,
			})
			resp, err := client.Get(srv.URL)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			assert.Equal(t, tc.wantCalls, calls.Load())
		})
	}
}

func TestNewDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	client := New(Options{RetryMax: 3, waitMin: time.Millisecond, waitMax: time.Millisecond})
	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}
