package engine

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dm/ccm-go/internal/client"
	"github.com/dm/ccm-go/internal/model"
)

// fetchFn produces the merged records for one resource category. Each
// implementation fetches a top-level list and enriches every item with its
// nested detail calls, sequentially, so remote-call ordering stays
// deterministic.
type fetchFn func(ctx context.Context, c client.CraftyClient) ([]model.Record, error)

// tolerantFetch runs fn as a best-effort unit: any error escaping the whole
// list+detail sequence is logged at warn level and the category contributes
// an empty slice this cycle. The failure never aborts the poll.
//
// The unit is all-or-nothing: a failure on the 50th item discards the 49
// already merged.
// TODO: keep the items merged before the failure once consumers can handle
// partially populated categories.
func tolerantFetch(ctx context.Context, c client.CraftyClient, log zerolog.Logger, name string, fn fetchFn) []model.Record {
	records, err := fn(ctx, c)
	if err != nil {
		log.Warn().Err(err).Str("resource", name).Msg("fetch failed, category empty this cycle")
		return nil
	}
	return records
}

// fetchServers merges, per server: the list entry, the live stats payload
// (its own server_id key suppressed so the nested sub-object never overwrites
// the record identity), the access-control entries, and the webhook entries.
func fetchServers(ctx context.Context, c client.CraftyClient) ([]model.Record, error) {
	list, err := c.Servers(ctx)
	if err != nil {
		return nil, err
	}

	servers := make([]model.Record, 0, len(list))
	for _, entry := range list {
		id, ok := entry.ID(model.KeyServerID)
		if !ok {
			continue
		}

		stats, err := c.ServerStats(ctx, id)
		if err != nil {
			return nil, err
		}
		accesses, err := c.ServerAccesses(ctx, id)
		if err != nil {
			return nil, err
		}
		webhooks, err := c.ServerWebhooks(ctx, id)
		if err != nil {
			return nil, err
		}

		rec := model.Merge(entry, model.Without(stats, model.KeyServerID))
		rec["accesses"] = accesses
		rec["webhooks"] = webhooks
		servers = append(servers, rec)
	}
	return servers, nil
}

// fetchRoles merges, per role: the list entry, the servers the role grants
// access to (with permission bitstrings), and the ids of the users holding it.
func fetchRoles(ctx context.Context, c client.CraftyClient) ([]model.Record, error) {
	list, err := c.Roles(ctx)
	if err != nil {
		return nil, err
	}

	roles := make([]model.Record, 0, len(list))
	for _, entry := range list {
		id, ok := entry.ID(model.KeyRoleID)
		if !ok {
			continue
		}

		servers, err := c.RoleServers(ctx, id)
		if err != nil {
			return nil, err
		}
		users, err := c.RoleUsers(ctx, id)
		if err != nil {
			return nil, err
		}

		rec := model.Merge(entry)
		rec["servers"] = servers
		rec["users"] = users
		roles = append(roles, rec)
	}
	return roles, nil
}

// fetchUsers merges, per user: the list entry, the detailed profile record,
// and the profile picture reference.
func fetchUsers(ctx context.Context, c client.CraftyClient) ([]model.Record, error) {
	list, err := c.Users(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]model.Record, 0, len(list))
	for _, entry := range list {
		id, ok := entry.ID(model.KeyUserID)
		if !ok {
			continue
		}

		detail, err := c.User(ctx, id)
		if err != nil {
			return nil, err
		}
		picture, err := c.UserPicture(ctx, id)
		if err != nil {
			return nil, err
		}

		rec := model.Merge(entry, detail)
		rec["picture"] = picture
		users = append(users, rec)
	}
	return users, nil
}
