package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"

	"github.com/localscene/events-backend/internal/config"
	"github.com/localscene/events-backend/internal/model"
)

const sessionPrefix = "session:"
const userSessionsPrefix = "user_sessions:"

type RefreshTokenRepository struct {
	pool   *redis.Pool
	logger *zap.SugaredLogger
}

func NewRefreshTokenRepository(pool *redis.Pool, logger *zap.SugaredLogger) *RefreshTokenRepository {
	return &RefreshTokenRepository{pool: pool, logger: logger}
}

func (r *RefreshTokenRepository) Add(ctx context.Context, session string, id int64) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	ttl := int(config.SessionTTl().Seconds())
	reply, err := redis.String(conn.Do("SET", sessionPrefix+session, id, "EX", ttl, "NX"))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return model.ErrAlreadyExists
		}
		return fmt.Errorf("set session: %w", err)
	}
	if reply != "OK" {
		return model.ErrAlreadyExists
	}

	if _, err := conn.Do("SADD", userSessionsPrefix+fmt.Sprint(id), session); err != nil {
		return fmt.Errorf("add session to user set: %w", err)
	}

	return nil
}

func (r *RefreshTokenRepository) Get(ctx context.Context, session string) (int64, error) {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	id, err := redis.Int64(conn.Do("GET", sessionPrefix+session))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return 0, model.ErrNoRecord
		}
		return 0, fmt.Errorf("get session: %w", err)
	}

	return id, nil
}

func (r *RefreshTokenRepository) Refresh(ctx context.Context, old, new string) error {
	id, err := r.Get(ctx, old)
	if err != nil {
		return err
	}

	if err := r.Delete(ctx, old); err != nil {
		return err
	}

	return r.Add(ctx, new, id)
}

func (r *RefreshTokenRepository) Delete(ctx context.Context, session string) error {
	id, err := r.Get(ctx, session)
	if err != nil {
		return err
	}

	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Do("DEL", sessionPrefix+session); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if _, err := conn.Do("SREM", userSessionsPrefix+fmt.Sprint(id), session); err != nil {
		return fmt.Errorf("remove session from user set: %w", err)
	}

	return nil
}

func (r *RefreshTokenRepository) DeleteByUserID(ctx context.Context, id int64) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	sessions, err := redis.Strings(conn.Do("SMEMBERS", userSessionsPrefix+fmt.Sprint(id)))
	if err != nil {
		return fmt.Errorf("get user sessions: %w", err)
	}

	for _, s := range sessions {
		if _, err := conn.Do("DEL", sessionPrefix+s); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
	}

	if _, err := conn.Do("DEL", userSessionsPrefix+fmt.Sprint(id)); err != nil {
		return fmt.Errorf("delete user session set: %w", err)
	}

	return nil
}

// DeleteExpired prunes user-set members whose session keys have already
// expired; the session keys themselves carry redis TTLs.
func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	cursor := 0
	for {
		values, err := redis.Values(conn.Do("SCAN", cursor, "MATCH", userSessionsPrefix+"*"))
		if err != nil {
			return fmt.Errorf("scan user sets: %w", err)
		}

		var keys []string
		if _, err := redis.Scan(values, &cursor, &keys); err != nil {
			return fmt.Errorf("parse scan reply: %w", err)
		}

		for _, key := range keys {
			sessions, err := redis.Strings(conn.Do("SMEMBERS", key))
			if err != nil {
				return fmt.Errorf("get user sessions: %w", err)
			}

			for _, s := range sessions {
				exists, err := redis.Bool(conn.Do("EXISTS", sessionPrefix+s))
				if err != nil {
					return fmt.Errorf("check session: %w", err)
				}
				if !exists {
					if _, err := conn.Do("SREM", key, s); err != nil {
						return fmt.Errorf("remove expired session: %w", err)
					}
				}
			}
		}

		if cursor == 0 {
			return nil
		}
	}
}
