package raworc

import (
	"context"
	"net/http"
)

// ListServiceAccounts lists service accounts.
func (c *Client) ListServiceAccounts(ctx context.Context) ([]ServiceAccount, error) {
	return getJSON[[]ServiceAccount](ctx, c, "service-accounts", nil)
}

// CreateServiceAccount creates a service account.
func (c *Client) CreateServiceAccount(
	ctx context.Context,
	req *CreateServiceAccountRequest,
) (*ServiceAccount, error) {
	return postJSON[*ServiceAccount](ctx, c, "service-accounts", req)
}

// GetServiceAccount returns a service account.
func (c *Client) GetServiceAccount(ctx context.Context, id string) (*ServiceAccount, error) {
	return getJSON[*ServiceAccount](ctx, c, "service-accounts/"+id, nil)
}

// UpdateServiceAccount updates a service account.
func (c *Client) UpdateServiceAccount(
	ctx context.Context,
	id string,
	req *UpdateServiceAccountRequest,
) (*ServiceAccount, error) {
	return putJSON[*ServiceAccount](ctx, c, "service-accounts/"+id, req)
}

// DeleteServiceAccount deletes a service account.
func (c *Client) DeleteServiceAccount(ctx context.Context, id string) error {
	return deleteReq(ctx, c, "service-accounts/"+id)
}

// UpdateServiceAccountPassword rotates a service account password.
func (c *Client) UpdateServiceAccountPassword(
	ctx context.Context,
	id string,
	req *UpdatePasswordRequest,
) error {
	return exec(ctx, c, http.MethodPut, "service-accounts/"+id+"/password", req)
}

// ListRoles lists roles.
func (c *Client) ListRoles(ctx context.Context) ([]Role, error) {
	return getJSON[[]Role](ctx, c, "roles", nil)
}

// CreateRole creates a role.
func (c *Client) CreateRole(ctx context.Context, req *CreateRoleRequest) (*Role, error) {
	return postJSON[*Role](ctx, c, "roles", req)
}

// GetRole returns a role.
func (c *Client) GetRole(ctx context.Context, id string) (*Role, error) {
	return getJSON[*Role](ctx, c, "roles/"+id, nil)
}

// DeleteRole deletes a role.
func (c *Client) DeleteRole(ctx context.Context, id string) error {
	return deleteReq(ctx, c, "roles/"+id)
}

// ListRoleBindings lists role bindings.
func (c *Client) ListRoleBindings(ctx context.Context) ([]RoleBinding, error) {
	return getJSON[[]RoleBinding](ctx, c, "role-bindings", nil)
}

// CreateRoleBinding binds a role to a subject.
func (c *Client) CreateRoleBinding(
	ctx context.Context,
	req *CreateRoleBindingRequest,
) (*RoleBinding, error) {
	return postJSON[*RoleBinding](ctx, c, "role-bindings", req)
}

// GetRoleBinding returns a role binding.
func (c *Client) GetRoleBinding(ctx context.Context, id string) (*RoleBinding, error) {
	return getJSON[*RoleBinding](ctx, c, "role-bindings/"+id, nil)
}

// DeleteRoleBinding deletes a role binding.
func (c *Client) DeleteRoleBinding(ctx context.Context, id string) error {
	return deleteReq(ctx, c, "role-bindings/"+id)
}
