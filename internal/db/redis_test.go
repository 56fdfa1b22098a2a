package db

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	rc := NewRedisConfig("", "127.0.0.1", "6379", 0)
	rds := redis.NewClient(&redis.Options{
		Addr:     rc.ip + ":" + rc.port,
		Password: rc.password,
		DB:       rc.db,
	})
	if err := rds.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis unavailable: %v", err)
	}
	return rds
}

func TestTokenDenylist(t *testing.T) {

	stg := &Storage{rds: newTestRedis(t)}

	t.Run("blocked token is found", func(t *testing.T) {
		err := stg.BlockToken("token-abc", time.Minute)
		assert.NoError(t, err)
		assert.True(t, stg.IsTokenBlocked("token-abc"))
	})

	t.Run("expired entry is ignored", func(t *testing.T) {
		err := stg.BlockToken("token-old", -time.Minute)
		assert.NoError(t, err)
		assert.False(t, stg.IsTokenBlocked("token-old"))
	})

	t.Run("unknown token passes", func(t *testing.T) {
		assert.False(t, stg.IsTokenBlocked("token-unknown"))
	})
}

func TestQueryCache(t *testing.T) {

	stg := &Storage{rds: newTestRedis(t)}

	type row struct {
		Name string
	}

	t.Run("set then get", func(t *testing.T) {
		stg.cacheSet(fundKey("cache-test"), row{Name: "Fundo"})

		var got row
		assert.True(t, stg.cacheGet(fundKey("cache-test"), &got))
		assert.Equal(t, "Fundo", got.Name)
	})

	t.Run("deleted key misses", func(t *testing.T) {
		stg.cacheSet(fundKey("cache-del"), row{Name: "Fundo"})
		stg.cacheDel(fundKey("cache-del"))

		var got row
		assert.False(t, stg.cacheGet(fundKey("cache-del"), &got))
	})
}
