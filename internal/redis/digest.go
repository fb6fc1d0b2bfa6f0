package redis

import (
	"context"
	"fmt"

	"github.com/gomodule/redigo/redis"
)

const digestSentPrefix = "digest_sent:"

// two weeks, comfortably past the next scheduled run
const digestMarkerTTL = 14 * 24 * 60 * 60

type DigestMarkerRepository struct {
	pool *redis.Pool
}

func NewDigestMarkerRepository(pool *redis.Pool) *DigestMarkerRepository {
	return &DigestMarkerRepository{pool: pool}
}

// MarkSent records that the digest for the given week key went out and
// reports whether this call was the first to do so, keeping restarted jobs
// from double-sending.
func (r *DigestMarkerRepository) MarkSent(ctx context.Context, weekKey string) (bool, error) {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return false, fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	reply, err := redis.String(conn.Do("SET", digestSentPrefix+weekKey, 1, "EX", digestMarkerTTL, "NX"))
	if err != nil {
		if err == redis.ErrNil {
			return false, nil
		}
		return false, fmt.Errorf("set digest marker: %w", err)
	}

	return reply == "OK", nil
}
