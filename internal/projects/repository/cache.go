package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tasktrack/tracker-backend/internal/logging"
	"github.com/tasktrack/tracker-backend/internal/projects/domain"
)

const (
	projectListKey = "tracker:projects:list"
	projectGenKey  = "tracker:projects:gen"
)

// CachedRepository keeps the full project list in Redis.
//
// Every create bumps projectGenKey and drops the list in one transaction.
// A List that misses the cache WATCHes projectGenKey before reading the
// store, so its write is discarded if a create landed in between. A write
// that slips in before the bump is removed by the create's delete.
// Redis failures never fail a request; the store is always the fallback.
type CachedRepository struct {
	next   Repository
	client *redis.Client
	ttl    time.Duration
}

func NewCachedRepository(next Repository, client *redis.Client, ttl time.Duration) *CachedRepository {
	return &CachedRepository{next: next, client: client, ttl: ttl}
}

func (r *CachedRepository) Create(ctx context.Context, name string, description *string) (*domain.Project, error) {
	p, err := r.next.Create(ctx, name, description)
	if err != nil {
		return nil, err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, projectGenKey)
		pipe.Del(ctx, projectListKey)
		return nil
	})
	if err != nil {
		logging.NewLogger(ctx).LogError("invalidate project cache", err)
	}
	return p, nil
}

func (r *CachedRepository) List(ctx context.Context) ([]domain.Project, error) {
	logger := logging.NewLogger(ctx)

	data, err := r.client.Get(ctx, projectListKey).Bytes()
	switch {
	case err == nil:
		var cached []domain.Project
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
		logger.LogWarn("read project cache", "discarding undecodable entry")
	case !errors.Is(err, redis.Nil):
		logger.LogError("read project cache", err)
	}

	var (
		items    []domain.Project
		storeErr error
		loaded   bool
	)
	load := func() {
		items, storeErr = r.next.List(ctx)
		loaded = true
	}

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		load()
		if storeErr != nil {
			return nil
		}
		payload, err := json.Marshal(items)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, projectListKey, payload, r.ttl)
			return nil
		})
		return err
	}, projectGenKey)

	switch {
	case err == nil:
		if storeErr == nil {
			logger.LogInfof("read project cache", "miss, cached %d projects", len(items))
		}
	case errors.Is(err, redis.TxFailedErr):
		logger.LogInfof("write project cache", "skipped, project list changed during load")
	default:
		logger.LogError("write project cache", err)
	}

	if !loaded {
		load()
	}
	if storeErr != nil {
		return nil, storeErr
	}
	return items, nil
}
