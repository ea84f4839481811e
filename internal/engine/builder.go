package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/dm/ccm-go/internal/client"
	"github.com/dm/ccm-go/internal/model"
)

// BuildSnapshot runs one poll cycle: it validates the session, then runs the
// three resource fetchers and assembles their outputs into a Snapshot.
//
// Failure isolation is two-tier. Each fetcher is best-effort as a unit —
// its errors are absorbed by tolerantFetch and the category comes back
// empty. Errors in the orchestration itself (the session check) are fatal:
// no snapshot is produced and the error is returned, with login failures
// distinguishable via client.ErrLoginFailed.
func BuildSnapshot(ctx context.Context, c client.CraftyClient, log zerolog.Logger) (*model.Snapshot, error) {
	if err := c.Ping(ctx); err != nil {
		if errors.Is(err, client.ErrLoginFailed) {
			return nil, fmt.Errorf("session check: %w", err)
		}
		return nil, fmt.Errorf("session check: unexpected failure: %w", err)
	}

	snap := &model.Snapshot{Client: c}

	// The three fetchers are independent and run concurrently; each one's
	// nested detail calls stay sequential inside fetchFn. The group only
	// joins — fetcher errors never escape tolerantFetch.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		snap.Servers = tolerantFetch(gctx, c, log, "servers", fetchServers)
		return nil
	})
	g.Go(func() error {
		snap.Roles = tolerantFetch(gctx, c, log, "roles", fetchRoles)
		return nil
	})
	g.Go(func() error {
		snap.Users = tolerantFetch(gctx, c, log, "users", fetchUsers)
		return nil
	})
	_ = g.Wait()

	snap.FetchedAt = time.Now()
	return snap, nil
}
