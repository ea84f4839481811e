package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm/ccm-go/internal/client"
)

func TestBuildSnapshotAllCategories(t *testing.T) {
	mc := &MockCraftyClient{}

	snap, err := BuildSnapshot(context.Background(), mc, zerolog.Nop())
	require.NoError(t, err)
	require.NotNil(t, snap)

	assert.Same(t, client.CraftyClient(mc), snap.Client)
	assert.Len(t, snap.Servers, 1)
	assert.Len(t, snap.Roles, 1)
	assert.Len(t, snap.Users, 1)
	assert.False(t, snap.FetchedAt.IsZero())
}

func TestBuildSnapshotOneFetcherFailingIsNonFatal(t *testing.T) {
	mc := &MockCraftyClient{
		RolesFn: func(_ context.Context) ([]client.Record, error) {
			return nil, errMockFailure
		},
	}

	snap, err := BuildSnapshot(context.Background(), mc, zerolog.Nop())
	require.NoError(t, err)
	require.NotNil(t, snap)

	assert.Len(t, snap.Servers, 1)
	assert.Empty(t, snap.Roles)
	assert.Len(t, snap.Users, 1)
}

func TestBuildSnapshotLoginFailureInOrchestrationIsFatal(t *testing.T) {
	mc := &MockCraftyClient{
		PingFn: func(_ context.Context) error {
			return fmt.Errorf("do request: %w", client.ErrLoginFailed)
		},
	}

	snap, err := BuildSnapshot(context.Background(), mc, zerolog.Nop())
	assert.Nil(t, snap)
	require.Error(t, err)
	assert.True(t, errors.Is(err, client.ErrLoginFailed))
}

func TestBuildSnapshotUnknownOrchestrationFailureIsFatal(t *testing.T) {
	mc := &MockCraftyClient{
		PingFn: func(_ context.Context) error { return errMockFailure },
	}

	snap, err := BuildSnapshot(context.Background(), mc, zerolog.Nop())
	assert.Nil(t, snap)
	require.Error(t, err)
	assert.False(t, errors.Is(err, client.ErrLoginFailed))
}
