package testing

import (
	"context"
	"net"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

// RedisClient connects to the redis used by integration tests. Host and password
// come from GYMSESSION_REDIS_HOST and GYMSESSION_REDIS_PASS, both optional.
// The client is closed and the test db flushed when the test ends.
func RedisClient(t *testing.T) (context.Context, *redis.Client) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	redisHost := os.Getenv("GYMSESSION_REDIS_HOST")
	if redisHost == "" {
		redisHost = "localhost"
	}
	t.Logf("using redis host: [%s]", redisHost)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(redisHost, "6379"),
		Password: os.Getenv("GYMSESSION_REDIS_PASS"),
		DB:       1, // keep test keys away from the default db
	})

	pingRes, err := rdb.Ping(ctx).Result()
	require.NoError(t, err)
	t.Logf("redis ping res: %s", pingRes)

	t.Cleanup(func() {
		if err := rdb.FlushDB(context.Background()).Err(); err != nil {
			t.Logf("flush redis test db: %s", err)
		}
		if err := rdb.Close(); err != nil {
			t.Logf("close redis client: %s", err)
		}
	})

	return ctx, rdb
}
