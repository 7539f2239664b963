// Package redis backs the month-granularity prayer schedule cache with a
// Redis instance so cached months survive restarts.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/masjid-labs/muadhin/internal/aladhan"
	"github.com/masjid-labs/muadhin/internal/schedule"
)

// Months older than this are garbage; three months comfortably covers the
// current month plus the prefetched next one.
const cacheTTL = 92 * 24 * time.Hour

// ScheduleCache implements schedule.Cache on top of go-redis.
type ScheduleCache struct {
	rdb *redis.Client
}

// NewScheduleCache connects to Redis and verifies the connection.
func NewScheduleCache(addr, username, password string) (*ScheduleCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	log.Info().Str("addr", addr).Msg("connected to redis")
	return &ScheduleCache{rdb: rdb}, nil
}

// Get returns the cached month for key, or false when absent or unreadable.
func (c *ScheduleCache) Get(ctx context.Context, key schedule.CacheKey) ([]aladhan.Day, bool) {
	raw, err := c.rdb.Get(ctx, key.String()).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Error().Err(err).Str("key", key.String()).Msg("schedule cache read failed")
		}
		return nil, false
	}

	var days []aladhan.Day
	if err := json.Unmarshal(raw, &days); err != nil {
		log.Error().Err(err).Str("key", key.String()).Msg("corrupt schedule cache entry, dropping")
		c.rdb.Del(ctx, key.String())
		return nil, false
	}
	return days, true
}

// Put stores a month under key. Cache writes are best-effort; a failure is
// logged and the resolver carries on with the data it already has.
func (c *ScheduleCache) Put(ctx context.Context, key schedule.CacheKey, days []aladhan.Day) {
	raw, err := json.Marshal(days)
	if err != nil {
		log.Error().Err(err).Str("key", key.String()).Msg("failed to encode schedule cache entry")
		return
	}
	if err := c.rdb.Set(ctx, key.String(), raw, cacheTTL).Err(); err != nil {
		log.Error().Err(err).Str("key", key.String()).Msg("schedule cache write failed")
	}
}
