package client

import (
	"errors"
	"net/http"
	"strings"
)

const defaultUserAgent = "pwnboard-go-client"

type Option func(*Options)

type Options struct {
	httpClient     *http.Client
	requestLogger  RequestLogger
	requestHeaders map[string]string
	userAgent      string
}

func newClientOptions() *Options {
	return &Options{
		httpClient:    &http.Client{},
		requestLogger: &NoopLogger{},
		requestHeaders: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
		userAgent: defaultUserAgent,
	}
}

// WithHTTPClient makes the client send requests through the given
// [http.Client]. Timeouts, proxies and TLS settings are taken from it.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *Options) {
		if httpClient != nil {
			o.httpClient = httpClient
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || isProtectedHeader(header) {
			return
		}

		o.requestHeaders[header] = value
	}
}

func WithUserAgent(userAgent string) Option {
	return func(o *Options) {
		userAgent = strings.TrimSpace(userAgent)

		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

func (o *Options) Validate() error {
	if o.httpClient == nil {
		return errors.New("httpClient must not be nil")
	}

	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	return nil
}

// Pwnboard has no authentication, so Authorization is rejected along with
// the headers the client always sets itself.
func isProtectedHeader(header string) bool {
	for _, protected := range []string{"Content-Type", "Accept", "Authorization", "User-Agent"} {
		if strings.EqualFold(header, protected) {
			return true
		}
	}

	return false
}
