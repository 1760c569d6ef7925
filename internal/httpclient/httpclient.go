// Package httpclient builds the outbound HTTP clients shared by the adapters
// that talk to remote APIs.
package httpclient

import (
	"context"
	"crypto/x509"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// Options describes an outbound client. A zero RetryMax yields a plain
// client, so remote failures surface on the first attempt.
type Options struct {
	Timeout  time.Duration
	RetryMax int
	Logger   *slog.Logger

	waitMin time.Duration
	waitMax time.Duration
}

const (
	defaultWaitMin = 500 * time.Millisecond
	defaultWaitMax = 5 * time.Second
)

// New returns an *http.Client honouring opts.
func New(opts Options) *http.Client {
	base := &http.Client{Timeout: opts.Timeout}
	if opts.RetryMax <= 0 {
		return base
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient = base
	rc.RetryMax = opts.RetryMax
	rc.RetryWaitMin = defaultWaitMin
	rc.RetryWaitMax = defaultWaitMax
	if opts.waitMin > 0 {
		rc.RetryWaitMin = opts.waitMin
	}
	if opts.waitMax > 0 {
		rc.RetryWaitMax = opts.waitMax
	}
	rc.CheckRetry = shouldRetry
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.Logger = nil
	if opts.Logger != nil {
		rc.Logger = opts.Logger
	}
	return rc.StandardClient()
}

// shouldRetry retries transport errors, 429 and 5xx responses except 501.
// Malformed URLs and certificate failures are permanent.
func shouldRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		var (
			urlErr  *url.Error
			certErr x509.CertificateInvalidError
			caErr   x509.UnknownAuthorityError
		)
		if errors.As(err, &certErr) || errors.As(err, &caErr) {
			return false, nil
		}
		if errors.As(err, &urlErr) && urlErr.Op == "parse" {
			return false, nil
		}
		return true, nil
	}
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return true, nil
	case resp.StatusCode == 0, resp.StatusCode >= 500 && resp.StatusCode != http.StatusNotImplemented:
		return true, nil
	}
	return false, nil
}
