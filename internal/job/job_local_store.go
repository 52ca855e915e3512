package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	localListKeyFmt  = "jobs:local:%s"
	localTrashKeyFmt = "trash:local:%s"
)

// LocalStore holds the independent user's job list and trash as whole
// serialized blobs, one mutable slot each per device. There is no per-record
// transaction: every mutation is a whole-list read-modify-write.
//
//go:generate mockgen -source=job_local_store.go -destination=mock/job_local_store_mock.go -package=mock
type LocalStore interface {
	// LoadList reports (jobs, existed, err); existed is false on a device
	// that has never persisted a list, which triggers the first-run seed.
	LoadList(ctx context.Context, deviceID string) ([]JobRecord, bool, error)
	SaveList(ctx context.Context, deviceID string, jobs []JobRecord) error
	LoadTrash(ctx context.Context, deviceID string) ([]JobRecord, error)
	SaveTrash(ctx context.Context, deviceID string, jobs []JobRecord) error
}

type redisLocalStore struct {
	rdb *redis.Client
}

func NewRedisLocalStore(rdb *redis.Client) LocalStore {
	return &redisLocalStore{rdb: rdb}
}

func (s *redisLocalStore) LoadList(ctx context.Context, deviceID string) ([]JobRecord, bool, error) {
	jobs, existed, err := s.loadBlob(ctx, fmt.Sprintf(localListKeyFmt, deviceID))
	return jobs, existed, err
}

func (s *redisLocalStore) SaveList(ctx context.Context, deviceID string, jobs []JobRecord) error {
	return s.saveBlob(ctx, fmt.Sprintf(localListKeyFmt, deviceID), jobs)
}

func (s *redisLocalStore) LoadTrash(ctx context.Context, deviceID string) ([]JobRecord, error) {
	jobs, _, err := s.loadBlob(ctx, fmt.Sprintf(localTrashKeyFmt, deviceID))
	return jobs, err
}

func (s *redisLocalStore) SaveTrash(ctx context.Context, deviceID string, jobs []JobRecord) error {
	return s.saveBlob(ctx, fmt.Sprintf(localTrashKeyFmt, deviceID), jobs)
}

func (s *redisLocalStore) loadBlob(ctx context.Context, key string) ([]JobRecord, bool, error) {
	raw, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return []JobRecord{}, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var jobs []JobRecord
	if err := json.Unmarshal([]byte(raw), &jobs); err != nil {
		return nil, false, err
	}
	if jobs == nil {
		jobs = []JobRecord{}
	}
	return jobs, true, nil
}

func (s *redisLocalStore) saveBlob(ctx context.Context, key string, jobs []JobRecord) error {
	if jobs == nil {
		jobs = []JobRecord{}
	}
	raw, err := json.Marshal(jobs)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, raw, 0).Err()
}
