package raworc

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/harshapalnati/raworc-mcpserver/pkg/raworcerrs"
)

const (
	// DefaultBaseURL is the public Raworc API root.
	DefaultBaseURL = "https://api.remoteagent.com/api/v0"
	// DefaultTimeout bounds every HTTP request.
	DefaultTimeout = 30 * time.Second
	// FallbackSpace is used when neither an override nor a default space is set.
	FallbackSpace = "default"
)

// Config holds the settings needed to construct a Client.
type Config struct {
	// BaseURL is the API root, including any path prefix such as /api/v0.
	BaseURL string

	// Token is an initial bearer token. Optional.
	Token string

	// Username and Password enable login and transparent re-authentication
	// after a 401. Both must be set for either to take effect.
	Username string
	Password string

	// DefaultSpace is used by space-scoped operations when no space is given.
	DefaultSpace string

	// Timeout bounds each HTTP request. Defaults to DefaultTimeout.
	Timeout time.Duration
}

type (
	// Option configures optional Client dependencies.
	Option func(*Client)

	// Client is a Raworc REST API client. It is safe for concurrent use.
	Client struct {
		baseURL      string
		defaultSpace string
		username     string
		password     string
		http         *http.Client
		logger       *slog.Logger

		mu      sync.RWMutex
		token   string
		refresh singleflight.Group
	}
)

// WithHTTPClient overrides the underlying *http.Client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(cl *Client) {
		cl.logger = logger
	}
}

// New constructs a Client. It returns a configuration error when the base
// URL is not an absolute http(s) URL.
func New(cfg Config, opts ...Option) (*Client, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, raworcerrs.NewConfigError("api_url", "invalid base URL", err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, raworcerrs.NewConfigError(
			"api_url",
			"base URL must be an absolute http or https URL: "+baseURL,
			nil,
		)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	cl := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		defaultSpace: cfg.DefaultSpace,
		username:     cfg.Username,
		password:     cfg.Password,
		token:        cfg.Token,
		http:         &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cl)
		}
	}
	if cl.http == nil {
		cl.http = &http.Client{Timeout: timeout}
	}
	if cl.logger == nil {
		cl.logger = slog.Default()
	}

	return cl, nil
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Token returns the current bearer token, or "" when unauthenticated.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.token
}

// SetToken replaces the bearer token used for subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// HasCredentials reports whether both username and password are stored.
func (c *Client) HasCredentials() bool {
	return c.username != "" && c.password != ""
}

// resolveSpace applies the override > default > "default" fallback.
func (c *Client) resolveSpace(space string) string {
	if space != "" {
		return space
	}
	if c.defaultSpace != "" {
		return c.defaultSpace
	}

	return FallbackSpace
}

// Authenticate logs in with the given credentials and stores the token.
func (c *Client) Authenticate(
	ctx context.Context,
	username, password string,
) (*AuthResponse, error) {
	resp, err := c.login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	c.SetToken(resp.Token)

	return resp, nil
}

// login posts credentials without the re-auth wrapper.
func (c *Client) login(
	ctx context.Context,
	username, password string,
) (*AuthResponse, error) {
	res, err := c.do(ctx, http.MethodPost, "auth/login", nil, &AuthRequest{
		User: username,
		Pass: password,
	})
	if err != nil {
		return nil, err
	}
	if !res.ok() {
		return nil, mapStatus(res)
	}

	return decodeJSON[*AuthResponse](res)
}

// GetUserInfo returns the principal behind the current token.
func (c *Client) GetUserInfo(ctx context.Context) (*UserInfo, error) {
	return getJSON[*UserInfo](ctx, c, "auth/me", nil)
}

// HealthCheck returns the raw health endpoint body.
func (c *Client) HealthCheck(ctx context.Context) (string, error) {
	return getText(ctx, c, "health")
}

// GetVersion returns the API version.
func (c *Client) GetVersion(ctx context.Context) (*VersionResponse, error) {
	return getJSON[*VersionResponse](ctx, c, "version", nil)
}
