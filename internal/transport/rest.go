package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/lampyrid/lampyrid-go/internal/types"
	"github.com/pkg/errors"
)

const contentType = "application/json"

// RESTTransport issues JSON requests against the Firefly III API. It owns
// status-code classification: every non-2xx response comes back as one of
// the typed errors in internal/types.
type RESTTransport struct {
	baseURL     string
	httpClient  *http.Client
	retryClient *retryablehttp.Client
	headers     map[string]string
	creds       types.CredentialSource
	logger      types.Logger
	hooks       *types.Hooks
}

// Options for the REST transport
type Options struct {
	BaseURL     string
	HTTPClient  *http.Client
	Headers     map[string]string
	Credentials types.CredentialSource
	RetryConfig *types.RetryConfig
	Logger      types.Logger
	Hooks       *types.Hooks
}

// NewRESTTransport creates a new REST transport
func NewRESTTransport(opts *Options) *RESTTransport {
	if opts == nil {
		opts = &Options{}
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: types.DefaultTimeout,
		}
	}

	// Retry only transient failures. 4xx responses are terminal and the
	// default retryablehttp policy already treats them as such.
	var retryClient *retryablehttp.Client
	if opts.RetryConfig != nil {
		retryClient = retryablehttp.NewClient()
		retryClient.HTTPClient = opts.HTTPClient
		retryClient.RetryMax = opts.RetryConfig.MaxRetries
		retryClient.RetryWaitMin = opts.RetryConfig.RetryWait
		retryClient.RetryWaitMax = opts.RetryConfig.MaxWait

		if opts.Logger != nil {
			retryClient.Logger = &retryLogger{logger: opts.Logger}
		} else {
			retryClient.Logger = nil
		}
	}

	headers := map[string]string{
		"Accept":       contentType,
		"Content-Type": contentType,
		"User-Agent":   types.UserAgent,
	}
	for k, v := range opts.Headers {
		headers[k] = v
	}

	return &RESTTransport{
		baseURL:     opts.BaseURL,
		httpClient:  opts.HTTPClient,
		retryClient: retryClient,
		headers:     headers,
		creds:       opts.Credentials,
		logger:      opts.Logger,
		hooks:       opts.Hooks,
	}
}

// SetCredentials replaces the credential source
func (t *RESTTransport) SetCredentials(creds types.CredentialSource) {
	t.creds = creds
}

// Get issues a GET request
func (t *RESTTransport) Get(ctx context.Context, path string, query url.Values, result interface{}) error {
	return t.do(ctx, http.MethodGet, path, query, nil, result)
}

// Post issues a POST request with a JSON body
func (t *RESTTransport) Post(ctx context.Context, path string, body, result interface{}) error {
	return t.do(ctx, http.MethodPost, path, nil, body, result)
}

// Put issues a PUT request with a JSON body
func (t *RESTTransport) Put(ctx context.Context, path string, body, result interface{}) error {
	return t.do(ctx, http.MethodPut, path, nil, body, result)
}

// Delete issues a DELETE request
func (t *RESTTransport) Delete(ctx context.Context, path string) error {
	return t.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// do executes a single HTTP exchange
func (t *RESTTransport) do(ctx context.Context, method, path string, query url.Values, body, result interface{}) error {
	if t.creds == nil {
		return types.ErrNotAuthenticated
	}
	token, err := t.creds.Token()
	if err != nil {
		return err
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to marshal request")
		}
		reqBody = bytes.NewReader(raw)
	}

	reqURL := t.baseURL + types.APIPrefix + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	for k, v := range t.headers {
		httpReq.Header.Set(k, v)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)

	if t.hooks != nil && t.hooks.OnRequest != nil {
		t.hooks.OnRequest(ctx, httpReq)
	}

	if t.logger != nil {
		t.logger.Debug("upstream request", "method", method, "path", path)
	}

	start := time.Now()
	resp, err := t.doRequest(httpReq)
	duration := time.Since(start)

	if err != nil {
		classified := classifyTransportError(ctx, err)
		if t.hooks != nil && t.hooks.OnError != nil {
			t.hooks.OnError(ctx, classified)
		}
		return classified
	}
	defer resp.Body.Close()

	if t.hooks != nil && t.hooks.OnResponse != nil {
		t.hooks.OnResponse(ctx, resp, duration)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &types.UnavailableError{Cause: "read", Err: err}
	}

	if t.logger != nil {
		t.logger.Debug("upstream response", "status", resp.StatusCode, "duration", duration, "size", len(respBody))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return t.handleHTTPError(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return errors.Wrap(err, "failed to unmarshal response")
		}
	}

	return nil
}

// doRequest executes the HTTP request with retry if configured
func (t *RESTTransport) doRequest(req *http.Request) (*http.Response, error) {
	if t.retryClient != nil {
		retryReq, err := retryablehttp.FromRequest(req)
		if err != nil {
			return nil, err
		}
		return t.retryClient.Do(retryReq)
	}
	return t.httpClient.Do(req)
}

// handleHTTPError maps non-2xx status codes to typed errors
func (t *RESTTransport) handleHTTPError(statusCode int, body []byte) error {
	// Firefly III error bodies carry a message plus optional per-field detail
	var errResp struct {
		Message string                 `json:"message"`
		Errors  map[string]interface{} `json:"errors"`
	}
	_ = json.Unmarshal(body, &errResp)

	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return types.ErrAuthExpired
	case http.StatusNotFound:
		return types.ErrNotFound
	case http.StatusTooManyRequests:
		return types.ErrRateLimited
	default:
		if statusCode >= 500 {
			cause := fmt.Sprintf("server error: %d", statusCode)
			if desc := httpStatusDescription(statusCode); desc != "" {
				cause = fmt.Sprintf("server error: %d (%s)", statusCode, desc)
			}
			return &types.UnavailableError{Cause: cause}
		}

		msg := errResp.Message
		if msg == "" {
			msg = fmt.Sprintf("HTTP error: %d", statusCode)
		}
		upstreamErr := &types.UpstreamError{
			StatusCode: statusCode,
			Message:    msg,
		}
		if len(errResp.Errors) > 0 {
			upstreamErr.Details = errResp.Errors
		}
		return upstreamErr
	}
}

// classifyTransportError maps connection-level failures to typed errors
func classifyTransportError(ctx context.Context, err error) error {
	if ctx.Err() == context.DeadlineExceeded || errors.Is(err, context.DeadlineExceeded) {
		return &types.UnavailableError{Cause: "timeout", Err: types.ErrTimeout}
	}
	if ctx.Err() == context.Canceled {
		return err
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &types.UnavailableError{Cause: "timeout", Err: types.ErrTimeout}
	}

	return &types.UnavailableError{Cause: "transport", Err: err}
}

// httpStatusDescription returns a human-readable description for common
// server error codes, including the Cloudflare-specific range.
func httpStatusDescription(statusCode int) string {
	descriptions := map[int]string{
		500: "Internal Server Error",
		501: "Not Implemented",
		502: "Bad Gateway",
		503: "Service Unavailable",
		504: "Gateway Timeout",
		520: "Web Server Error",
		521: "Web Server Is Down",
		522: "Connection Timed Out",
		523: "Origin Is Unreachable",
		524: "A Timeout Occurred",
		525: "SSL Handshake Failed",
		526: "Invalid SSL Certificate",
	}
	return descriptions[statusCode]
}

// retryLogger adapts our logger to retryablehttp
type retryLogger struct {
	logger types.Logger
}

func (l *retryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, keysAndValues...)
}

func (l *retryLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, keysAndValues...)
}

func (l *retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, keysAndValues...)
}
