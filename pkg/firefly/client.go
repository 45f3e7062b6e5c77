package firefly

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/lampyrid/lampyrid-go/internal/transport"
	internalTypes "github.com/lampyrid/lampyrid-go/internal/types"
	"github.com/pkg/errors"
)

const (
	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

// Shared types re-exported from the internal package
type (
	// Logger interface for logging
	Logger = internalTypes.Logger

	// RetryConfig configures retry behavior for transient failures
	RetryConfig = internalTypes.RetryConfig

	// Hooks provides request lifecycle hooks
	Hooks = internalTypes.Hooks

	// CredentialSource supplies the bearer token, read fresh per request
	CredentialSource = internalTypes.CredentialSource

	// StaticToken is a CredentialSource frozen at construction time
	StaticToken = internalTypes.StaticToken
)

// Client is the main Firefly III API client
type Client struct {
	// Service interfaces
	Accounts     AccountService
	Transactions TransactionService
	Budgets      BudgetService

	// Internal fields
	baseURL    string
	httpClient *http.Client
	transport  Transport
	options    *ClientOptions
}

// ClientOptions configures the client
type ClientOptions struct {
	// BaseURL is the Firefly III instance URL (required)
	BaseURL string

	// HTTPClient allows using a custom HTTP client
	HTTPClient *http.Client

	// Timeout sets the HTTP client timeout
	Timeout time.Duration

	// Token provides a static personal access token
	Token string

	// Credentials overrides Token with a rotating credential source
	Credentials CredentialSource

	// Logger for debug logging
	Logger Logger

	// RetryConfig configures retry behavior
	RetryConfig *RetryConfig

	// Hooks for observability
	Hooks *Hooks

	// SentryDSN enables Sentry error tracking when set
	SentryDSN string

	// SentryOptions allows custom Sentry configuration
	SentryOptions *sentry.ClientOptions
}

// Transport handles HTTP communication with the upstream API
type Transport interface {
	Get(ctx context.Context, path string, query url.Values, result interface{}) error
	Post(ctx context.Context, path string, body, result interface{}) error
	Put(ctx context.Context, path string, body, result interface{}) error
	Delete(ctx context.Context, path string) error
}

// NewClient creates a new Firefly III client
func NewClient(opts *ClientOptions) (*Client, error) {
	if opts == nil {
		opts = &ClientOptions{}
	}

	if opts.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}

	// Initialize Sentry if DSN is provided
	if opts.SentryDSN != "" || opts.SentryOptions != nil {
		sentryOpts := sentry.ClientOptions{}
		if opts.SentryOptions != nil {
			sentryOpts = *opts.SentryOptions
		}
		if opts.SentryDSN != "" {
			sentryOpts.Dsn = opts.SentryDSN
		}
		if sentryOpts.Environment == "" {
			sentryOpts.Environment = "production"
		}

		if err := sentry.Init(sentryOpts); err != nil {
			// Log but don't fail client creation
			if opts.Logger != nil {
				opts.Logger.Error("Failed to initialize Sentry", "error", err)
			}
		}
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: DefaultTimeout,
		}
	}

	if opts.Timeout > 0 {
		opts.HTTPClient.Timeout = opts.Timeout
	}

	creds := opts.Credentials
	if creds == nil {
		creds = StaticToken(opts.Token)
	}

	trans := transport.NewRESTTransport(&transport.Options{
		BaseURL:     opts.BaseURL,
		HTTPClient:  opts.HTTPClient,
		Credentials: creds,
		RetryConfig: opts.RetryConfig,
		Logger:      opts.Logger,
		Hooks:       opts.Hooks,
	})

	c := &Client{
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
		transport:  trans,
		options:    opts,
	}

	c.initServices()

	return c, nil
}

// NewClientWithToken creates a client with a base URL and access token
func NewClientWithToken(baseURL, token string) (*Client, error) {
	return NewClient(&ClientOptions{
		BaseURL: baseURL,
		Token:   token,
	})
}

// initServices initializes all service implementations
func (c *Client) initServices() {
	c.Accounts = &accountService{client: c}
	c.Transactions = &transactionService{client: c}
	c.Budgets = &budgetService{client: c}
}

// Close flushes any pending Sentry events and performs cleanup
func (c *Client) Close() {
	sentry.Flush(2 * time.Second)
}

// get performs a GET and records the outcome
func (c *Client) get(ctx context.Context, op, path string, query url.Values, result interface{}) error {
	err := c.transport.Get(ctx, path, query, result)
	c.observe(ctx, op, err)
	return err
}

// post performs a POST and records the outcome
func (c *Client) post(ctx context.Context, op, path string, body, result interface{}) error {
	err := c.transport.Post(ctx, path, body, result)
	c.observe(ctx, op, err)
	return err
}

// put performs a PUT and records the outcome
func (c *Client) put(ctx context.Context, op, path string, body, result interface{}) error {
	err := c.transport.Put(ctx, path, body, result)
	c.observe(ctx, op, err)
	return err
}

// del performs a DELETE and records the outcome
func (c *Client) del(ctx context.Context, op, path string) error {
	err := c.transport.Delete(ctx, path)
	c.observe(ctx, op, err)
	return err
}

// observe captures upstream failures in Sentry, tagged with the logical
// operation. Validation failures never reach here; they are caught before
// any transport call.
func (c *Client) observe(ctx context.Context, op string, err error) {
	if err == nil {
		return
	}

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("firefly.operation", op)
		hub.CaptureException(err)
	})

	if c.options.Logger != nil {
		c.options.Logger.Warn("upstream operation failed", "operation", op, "error", err)
	}
}
