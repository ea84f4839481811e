package engine

import (
	"context"
	"errors"

	"github.com/dm/ccm-go/internal/client"
)

// MockCraftyClient implements client.CraftyClient for testing. Unset Fn
// fields fall back to a small healthy panel: one server, one role, one user.
type MockCraftyClient struct {
	LoginFn          func(ctx context.Context) error
	PingFn           func(ctx context.Context) error
	ServersFn        func(ctx context.Context) ([]client.Record, error)
	ServerStatsFn    func(ctx context.Context, id any) (client.Record, error)
	ServerAccessesFn func(ctx context.Context, id any) ([]any, error)
	ServerWebhooksFn func(ctx context.Context, id any) ([]any, error)
	RolesFn          func(ctx context.Context) ([]client.Record, error)
	RoleServersFn    func(ctx context.Context, id any) ([]any, error)
	RoleUsersFn      func(ctx context.Context, id any) ([]any, error)
	UsersFn          func(ctx context.Context) ([]client.Record, error)
	UserFn           func(ctx context.Context, id any) (client.Record, error)
	UserPictureFn    func(ctx context.Context, id any) (string, error)
	ServerActionFn   func(ctx context.Context, id any, action client.ServerAction) error
}

func (m *MockCraftyClient) Login(ctx context.Context) error {
	if m.LoginFn != nil {
		return m.LoginFn(ctx)
	}
	return nil
}

func (m *MockCraftyClient) Ping(ctx context.Context) error {
	if m.PingFn != nil {
		return m.PingFn(ctx)
	}
	return nil
}

func (m *MockCraftyClient) Servers(ctx context.Context) ([]client.Record, error) {
	if m.ServersFn != nil {
		return m.ServersFn(ctx)
	}
	return []client.Record{{"server_id": float64(1), "server_name": "survival"}}, nil
}

func (m *MockCraftyClient) ServerStats(ctx context.Context, id any) (client.Record, error) {
	if m.ServerStatsFn != nil {
		return m.ServerStatsFn(ctx, id)
	}
	return client.Record{"cpu": 12.5, "mem_percent": 40.0, "running": true, "online": float64(3), "max": float64(20)}, nil
}

func (m *MockCraftyClient) ServerAccesses(ctx context.Context, id any) ([]any, error) {
	if m.ServerAccessesFn != nil {
		return m.ServerAccessesFn(ctx, id)
	}
	return []any{}, nil
}

func (m *MockCraftyClient) ServerWebhooks(ctx context.Context, id any) ([]any, error) {
	if m.ServerWebhooksFn != nil {
		return m.ServerWebhooksFn(ctx, id)
	}
	return []any{}, nil
}

func (m *MockCraftyClient) Roles(ctx context.Context) ([]client.Record, error) {
	if m.RolesFn != nil {
		return m.RolesFn(ctx)
	}
	return []client.Record{{"role_id": float64(2), "role_name": "moderators"}}, nil
}

func (m *MockCraftyClient) RoleServers(ctx context.Context, id any) ([]any, error) {
	if m.RoleServersFn != nil {
		return m.RoleServersFn(ctx, id)
	}
	return []any{map[string]any{"server_id": float64(1), "permissions": "00011000"}}, nil
}

func (m *MockCraftyClient) RoleUsers(ctx context.Context, id any) ([]any, error) {
	if m.RoleUsersFn != nil {
		return m.RoleUsersFn(ctx, id)
	}
	return []any{float64(5)}, nil
}

func (m *MockCraftyClient) Users(ctx context.Context) ([]client.Record, error) {
	if m.UsersFn != nil {
		return m.UsersFn(ctx)
	}
	return []client.Record{{"user_id": float64(5), "username": "steve"}}, nil
}

func (m *MockCraftyClient) User(ctx context.Context, id any) (client.Record, error) {
	if m.UserFn != nil {
		return m.UserFn(ctx, id)
	}
	return client.Record{"last_login": "2026-01-02T15:04:05", "enabled": true}, nil
}

func (m *MockCraftyClient) UserPicture(ctx context.Context, id any) (string, error) {
	if m.UserPictureFn != nil {
		return m.UserPictureFn(ctx, id)
	}
	return "", nil
}

func (m *MockCraftyClient) ServerAction(ctx context.Context, id any, action client.ServerAction) error {
	if m.ServerActionFn != nil {
		return m.ServerActionFn(ctx, id, action)
	}
	return nil
}

func (m *MockCraftyClient) Host() string    { return "mock.local" }
func (m *MockCraftyClient) Port() int       { return 8443 }
func (m *MockCraftyClient) BaseURL() string { return "https://mock.local:8443" }

var errMockFailure = errors.New("mock failure")
