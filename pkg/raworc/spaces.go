package raworc

import "context"

// ListSpaces returns every space visible to the caller.
func (c *Client) ListSpaces(ctx context.Context) ([]Space, error) {
	return getJSON[[]Space](ctx, c, "spaces", nil)
}

// CreateSpace creates a space.
func (c *Client) CreateSpace(ctx context.Context, req *CreateSpaceRequest) (*Space, error) {
	return postJSON[*Space](ctx, c, "spaces", req)
}

// GetSpace returns a space by name.
func (c *Client) GetSpace(ctx context.Context, name string) (*Space, error) {
	return getJSON[*Space](ctx, c, "spaces/"+name, nil)
}

// UpdateSpace updates a space's description or settings.
func (c *Client) UpdateSpace(
	ctx context.Context,
	name string,
	req *UpdateSpaceRequest,
) (*Space, error) {
	return putJSON[*Space](ctx, c, "spaces/"+name, req)
}

// DeleteSpace deletes a space.
func (c *Client) DeleteSpace(ctx context.Context, name string) error {
	return deleteReq(ctx, c, "spaces/"+name)
}
