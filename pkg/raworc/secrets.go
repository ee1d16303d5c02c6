package raworc

import "context"

func secretsPath(space string) string {
	return "spaces/" + space + "/secrets"
}

// ListSecrets lists the secrets of a space, applying the space fallback.
func (c *Client) ListSecrets(ctx context.Context, space string) ([]Secret, error) {
	return getJSON[[]Secret](ctx, c, secretsPath(c.resolveSpace(space)), nil)
}

// CreateSecret creates a named secret.
func (c *Client) CreateSecret(
	ctx context.Context,
	space string,
	req *CreateSecretRequest,
) (*Secret, error) {
	return postJSON[*Secret](ctx, c, secretsPath(space), req)
}

// GetSecret returns a secret, including its value.
func (c *Client) GetSecret(ctx context.Context, space, key string) (*Secret, error) {
	return getJSON[*Secret](ctx, c, secretsPath(space)+"/"+key, nil)
}

// SetSecret writes a secret value under key.
func (c *Client) SetSecret(ctx context.Context, space, key, value string) (*Secret, error) {
	return postJSON[*Secret](ctx, c, secretsPath(space)+"/"+key, &SetSecretRequest{Value: value})
}

// UpdateSecret updates a secret's value or description.
func (c *Client) UpdateSecret(
	ctx context.Context,
	space, key string,
	req *UpdateSecretRequest,
) (*Secret, error) {
	return putJSON[*Secret](ctx, c, secretsPath(space)+"/"+key, req)
}

// DeleteSecret deletes a secret.
func (c *Client) DeleteSecret(ctx context.Context, space, key string) error {
	return deleteReq(ctx, c, secretsPath(space)+"/"+key)
}
