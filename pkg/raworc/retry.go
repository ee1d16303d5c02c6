package raworc

import (
	"context"

	"github.com/harshapalnati/raworc-mcpserver/pkg/raworcerrs"
)

// refreshKey is the singleflight key shared by every concurrent re-login.
const refreshKey = "token"

// withReauth runs call once. If it fails with an authentication error and
// credentials are stored, it logs in at most once, stores the new token and
// replays call exactly once. A failed login is returned without a replay.
// When another caller already replaced the rejected token, the login is
// skipped and the replay uses the newer token.
func withReauth[T any](
	ctx context.Context,
	c *Client,
	call func(context.Context) (T, error),
) (T, error) {
	rejected := c.Token()
	result, err := call(ctx)
	if err == nil || !raworcerrs.IsAuth(err) || !c.HasCredentials() {
		return result, err
	}

	c.logger.InfoContext(ctx, "request unauthorized, re-authenticating",
		"user", c.username,
	)
	if err := c.reauthenticate(ctx, rejected); err != nil {
		var zero T

		return zero, err
	}

	return call(ctx)
}

// reauthenticate logs in with the stored credentials unless the token has
// already moved past rejected. Concurrent callers share a single login.
func (c *Client) reauthenticate(ctx context.Context, rejected string) error {
	if c.Token() != rejected {
		return nil
	}
	_, err, _ := c.refresh.Do(refreshKey, func() (any, error) {
		if c.Token() != rejected {
			return nil, nil
		}
		resp, err := c.login(ctx, c.username, c.password)
		if err != nil {
			return nil, err
		}
		c.SetToken(resp.Token)

		return nil, nil
	})
	if err != nil {
		c.logger.WarnContext(ctx, "re-authentication failed", "error", err)

		return raworcerrs.NewAuthError(
			raworcerrs.ErrCodeLoginFailed,
			"re-authentication failed",
			err,
		)
	}

	return nil
}
