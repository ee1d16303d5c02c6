package raworc

import "context"

// CreateBuild starts an image build for a space.
func (c *Client) CreateBuild(
	ctx context.Context,
	space string,
	req *CreateBuildRequest,
) (*Build, error) {
	return postJSON[*Build](ctx, c, "spaces/"+space+"/build", req)
}

// GetLatestBuild returns the most recent build of a space.
func (c *Client) GetLatestBuild(ctx context.Context, space string) (*Build, error) {
	return getJSON[*Build](ctx, c, "spaces/"+space+"/build/latest", nil)
}

// GetBuild returns a build by ID.
func (c *Client) GetBuild(ctx context.Context, space, buildID string) (*Build, error) {
	return getJSON[*Build](ctx, c, "spaces/"+space+"/build/"+buildID, nil)
}
