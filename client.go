package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

const (
	boxAccessPath  = "/pwn/boxaccess"
	credentialPath = "/pwn/credential"
	logPath        = "/pwn/log"
)

// Client sends reports to a Pwnboard server. It holds no per-call state and
// is safe for concurrent use.
type Client struct {
	baseURI   string
	options   *Options
	transport *resty.Client
}

// New creates a client for the Pwnboard server at uri. The URI must be
// non-empty and must not end with a trailing slash.
func New(uri string, opts ...Option) (*Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("%w: base URI must not be empty", ErrInvalidURI)
	}

	if strings.HasSuffix(uri, "/") {
		return nil, fmt.Errorf("%w: base URI must not end with a trailing slash", ErrInvalidURI)
	}

	options := newClientOptions()

	for _, o := range opts {
		o(options)
	}

	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	transport := resty.NewWithClient(options.httpClient).
		SetLogger(options.requestLogger).
		SetHeaders(options.requestHeaders).
		SetHeader("User-Agent", options.userAgent).
		SetRetryCount(0)

	return &Client{
		baseURI:   uri,
		options:   options,
		transport: transport,
	}, nil
}

// URI returns the base URI the client was created with.
func (c *Client) URI() string {
	return c.baseURI
}

// Close releases idle connections held by the underlying transport.
func (c *Client) Close() {
	if c == nil || c.transport == nil {
		return
	}

	c.transport.GetClient().CloseIdleConnections()
}

// ReportBoxAccess reports that the box at ip was accessed via application.
func (c *Client) ReportBoxAccess(ctx context.Context, ip, application string, opts ...BoxAccessOption) (*resty.Response, error) {
	body := &boxAccessRequest{
		IP:          ip,
		Application: application,
	}

	for _, o := range opts {
		o(body)
	}

	return c.post(ctx, boxAccessPath, body)
}

// ReportCredential reports a password captured for service on the box at ip.
func (c *Client) ReportCredential(ctx context.Context, ip, service, password string, opts ...CredentialOption) (*resty.Response, error) {
	body := &credentialRequest{
		IP:       ip,
		Service:  service,
		Password: password,
	}

	for _, o := range opts {
		o(body)
	}

	return c.post(ctx, credentialPath, body)
}

// Log sends a log message for service on the box at ip.
func (c *Client) Log(ctx context.Context, ip, message, service string, opts ...LogOption) (*resty.Response, error) {
	body := &logRequest{
		IP:      ip,
		Message: message,
		Service: service,
	}

	for _, o := range opts {
		o(body)
	}

	return c.post(ctx, logPath, body)
}

func (c *Client) post(ctx context.Context, path string, body any) (*resty.Response, error) {
	url := c.baseURI + path

	c.options.requestLogger.Debugf("POST %s", url)

	resp, err := c.transport.R().
		SetContext(ctx).
		SetBody(body).
		Post(url)
	if err != nil {
		c.options.requestLogger.Errorf("POST %s failed: %v", url, err)
		return nil, &TransportError{Method: http.MethodPost, URL: url, Err: err}
	}

	c.options.requestLogger.Debugf("POST %s returned %d", url, resp.StatusCode())

	return resp, nil
}
