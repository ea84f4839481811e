package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

const (
	endpointLogin   = "/api/v2/auth/login"
	endpointPing    = "/api/v2/crafty/announcements"
	endpointServers = "/api/v2/servers"
	endpointRoles   = "/api/v2/roles"
	endpointUsers   = "/api/v2/users"
)

func idPath(base string, id any, suffix string) string {
	p := base + "/" + url.PathEscape(CanonicalID(id))
	if suffix != "" {
		p += "/" + suffix
	}
	return p
}

func (c *DefaultClient) getRecords(ctx context.Context, name, path string) ([]Record, error) {
	data, err := c.doGet(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	var result []Record
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%s decode: %w", name, err)
	}
	return result, nil
}

func (c *DefaultClient) getRecord(ctx context.Context, name, path string) (Record, error) {
	data, err := c.doGet(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	var result Record
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%s decode: %w", name, err)
	}
	return result, nil
}

func (c *DefaultClient) getList(ctx context.Context, name, path string) ([]any, error) {
	data, err := c.doGet(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	var result []any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%s decode: %w", name, err)
	}
	return result, nil
}

// Servers fetches the server list from /api/v2/servers.
func (c *DefaultClient) Servers(ctx context.Context) ([]Record, error) {
	return c.getRecords(ctx, "Servers", endpointServers)
}

// ServerStats fetches live statistics for one server.
func (c *DefaultClient) ServerStats(ctx context.Context, id any) (Record, error) {
	return c.getRecord(ctx, "ServerStats", idPath(endpointServers, id, "stats"))
}

// ServerAccesses fetches the access-control entries for one server.
func (c *DefaultClient) ServerAccesses(ctx context.Context, id any) ([]any, error) {
	return c.getList(ctx, "ServerAccesses", idPath(endpointServers, id, "users"))
}

// ServerWebhooks fetches the webhook entries for one server.
func (c *DefaultClient) ServerWebhooks(ctx context.Context, id any) ([]any, error) {
	return c.getList(ctx, "ServerWebhooks", idPath(endpointServers, id, "webhooks"))
}

// Roles fetches the role list from /api/v2/roles.
func (c *DefaultClient) Roles(ctx context.Context) ([]Record, error) {
	return c.getRecords(ctx, "Roles", endpointRoles)
}

// RoleServers fetches the servers a role grants access to, each entry
// carrying the role's permission bitstring for that server.
func (c *DefaultClient) RoleServers(ctx context.Context, id any) ([]any, error) {
	return c.getList(ctx, "RoleServers", idPath(endpointRoles, id, "servers"))
}

// RoleUsers fetches the ids of the users holding a role.
func (c *DefaultClient) RoleUsers(ctx context.Context, id any) ([]any, error) {
	return c.getList(ctx, "RoleUsers", idPath(endpointRoles, id, "users"))
}

// Users fetches the user list from /api/v2/users.
func (c *DefaultClient) Users(ctx context.Context) ([]Record, error) {
	return c.getRecords(ctx, "Users", endpointUsers)
}

// User fetches the detailed record for one user.
func (c *DefaultClient) User(ctx context.Context, id any) (Record, error) {
	return c.getRecord(ctx, "User", idPath(endpointUsers, id, ""))
}

// UserPicture fetches a user's profile picture reference. The panel returns
// a URL string, or null for users without one.
func (c *DefaultClient) UserPicture(ctx context.Context, id any) (string, error) {
	data, err := c.doGet(ctx, idPath(endpointUsers, id, "pfp"))
	if err != nil {
		return "", fmt.Errorf("UserPicture: %w", err)
	}

	var result string
	if len(data) > 0 && string(data) != "null" {
		if err := json.Unmarshal(data, &result); err != nil {
			return "", fmt.Errorf("UserPicture decode: %w", err)
		}
	}
	return result, nil
}

// ServerAction invokes one of the fixed server actions. The call is
// fire-and-forget: the panel acknowledges the request and the next poll
// observes whatever state change results.
func (c *DefaultClient) ServerAction(ctx context.Context, id any, action ServerAction) error {
	if !action.Valid() {
		return fmt.Errorf("ServerAction: unknown action %q", action)
	}
	if _, err := c.doPost(ctx, idPath(endpointServers, id, "action/"+string(action))); err != nil {
		return fmt.Errorf("ServerAction %s: %w", action, err)
	}
	return nil
}
