package availability_models

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hallbook/hallbook/logger"
	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "availability:"

// RedisLookup is the production Lookup implementation. It reads the cached
// availability table for one venue; the cron refresher keeps the cache warm
// from the booking store. Cache misses and Redis errors degrade to the
// open-world default, the same policy a missing table row gets.
type RedisLookup struct {
	rdb     *redis.Client
	venueID string
}

// NewRedisLookup returns a Lookup over the cached table for venueID.
func NewRedisLookup(rdb *redis.Client, venueID string) *RedisLookup {
	return &RedisLookup{rdb: rdb, venueID: venueID}
}

// SessionAvailability implements Lookup.
func (r *RedisLookup) SessionAvailability(date time.Time) SessionSlots {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := r.rdb.Get(ctx, cacheKeyPrefix+r.venueID).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.WarnLogger.Warnf("Availability cache read failed for venue %s: %v", r.venueID, err)
		}
		return SessionSlots{Afternoon: StatusAvailable, Evening: StatusAvailable}
	}

	var table Table
	if err := json.Unmarshal(raw, &table); err != nil {
		logger.ErrorLogger.Errorf("Corrupt availability cache for venue %s: %v", r.venueID, err)
		return SessionSlots{Afternoon: StatusAvailable, Evening: StatusAvailable}
	}
	return table.SessionAvailability(date)
}

// StoreTable writes a venue's availability table to the cache. The TTL keeps
// a dead refresher from serving stale bookings forever.
func StoreTable(ctx context.Context, rdb *redis.Client, venueID string, table Table, ttl time.Duration) error {
	raw, err := json.Marshal(table)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, cacheKeyPrefix+venueID, raw, ttl).Err()
}
