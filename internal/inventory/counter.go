// Package inventory exposes live per-ticket-type sold counters.  The
// counters are written by the external booking pipeline; this app only
// reads them, fresh on every catalog lookup, so availability reflects
// sales that happened after the catalog snapshot was taken.
package inventory

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// Counter reports the live sold count for a ticket type.  The boolean is
// false when no counter exists for the id (or the source is unavailable),
// in which case the catalog's own value stands.
type Counter interface {
	SoldCount(ctx context.Context, ticketTypeID string) (int, bool)
}

const keyPrefix = "tickets:sold:"

// RedisCounter reads sold counts from Redis keys of the form
// "tickets:sold:<ticketTypeID>".  A nil client is tolerated: every lookup
// then misses and callers degrade to catalog values, mirroring how the
// rest of the app treats an unconfigured Redis.
type RedisCounter struct {
	client *redis.Client
}

// NewRedisCounter wraps the given client.  The client may be nil.
func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

// SoldCount fetches the live counter for ticketTypeID.  Missing keys,
// transport errors, unparseable values and negative counts all report a
// miss rather than an error; a flaky counter source must never break a
// catalog lookup.
func (c *RedisCounter) SoldCount(ctx context.Context, ticketTypeID string) (int, bool) {
	if c == nil || c.client == nil {
		return 0, false
	}
	raw, err := c.client.Get(ctx, keyPrefix+ticketTypeID).Result()
	if err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
