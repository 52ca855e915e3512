package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyFmt  = "session:%s"
	sortPrefKeyFmt = "sortpref:%s"
)

// Cache is the local session cache: a single mutable slot per device plus a
// small fixed set of preference keys. Consumers must tolerate absent keys.
//
//go:generate mockgen -source=session_cache.go -destination=mock/session_cache_mock.go -package=mock
type Cache interface {
	GetSession(ctx context.Context, deviceID string) (*CachedSession, error)
	SaveSession(ctx context.Context, deviceID string, s CachedSession) error
	ClearSession(ctx context.Context, deviceID string) error
	GetSortPreference(ctx context.Context, deviceID string) (string, error)
	SaveSortPreference(ctx context.Context, deviceID, pref string) error
}

type redisCache struct {
	rdb *redis.Client
}

func NewRedisCache(rdb *redis.Client) Cache {
	return &redisCache{rdb: rdb}
}

// GetSession returns (nil, nil) when no session has been cached for the
// device yet.
func (c *redisCache) GetSession(ctx context.Context, deviceID string) (*CachedSession, error) {
	raw, err := c.rdb.Get(ctx, fmt.Sprintf(sessionKeyFmt, deviceID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var s CachedSession
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		// A corrupt blob is treated the same as an absent one.
		return nil, nil
	}
	return &s, nil
}

func (c *redisCache) SaveSession(ctx context.Context, deviceID string, s CachedSession) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, fmt.Sprintf(sessionKeyFmt, deviceID), raw, 0).Err()
}

func (c *redisCache) ClearSession(ctx context.Context, deviceID string) error {
	return c.rdb.Del(ctx, fmt.Sprintf(sessionKeyFmt, deviceID)).Err()
}

func (c *redisCache) GetSortPreference(ctx context.Context, deviceID string) (string, error) {
	pref, err := c.rdb.Get(ctx, fmt.Sprintf(sortPrefKeyFmt, deviceID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return pref, err
}

func (c *redisCache) SaveSortPreference(ctx context.Context, deviceID, pref string) error {
	return c.rdb.Set(ctx, fmt.Sprintf(sortPrefKeyFmt, deviceID), pref, 0).Err()
}
