package db

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Query results are cached per entity (plus parent id for child collections)
// and dropped by the mutation that touches them. A cache miss or a redis
// failure always falls through to mysql.

const cacheTTL = time.Minute

const fundListKey = "funds"

func fundKey(id string) string { return "fund:" + id }

func amortizationsKey(fundID string) string { return "amortizations:" + fundID }

func integralizationsKey(fundID string) string { return "integralizations:" + fundID }

func rciKey(fundID string) string { return "rci:" + fundID }

func agqKey(fundID string) string { return "agq:" + fundID }

func profileKey(userID string) string { return "profile:" + userID }

func roleKey(userID string) string { return "role:" + userID }

func (s Storage) cacheGet(key string, dest any) bool {

	val, err := s.rds.Get(context.Background(), key).Result()
	if err != nil {
		if err != redis.Nil {
			s.lg.Warn().Err(err).Str("key", key).Msg("Cache read failed")
		}
		return false
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		s.lg.Warn().Err(err).Str("key", key).Msg("Cache entry unreadable")
		return false
	}
	return true
}

func (s Storage) cacheSet(key string, value any) {

	data, err := json.Marshal(value)
	if err != nil {
		s.lg.Warn().Err(err).Str("key", key).Msg("Cache marshal failed")
		return
	}

	if err := s.rds.Set(context.Background(), key, data, cacheTTL).Err(); err != nil {
		s.lg.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
}

func (s Storage) cacheDel(keys ...string) {

	if err := s.rds.Del(context.Background(), keys...).Err(); err != nil {
		s.lg.Warn().Err(err).Strs("keys", keys).Msg("Cache invalidation failed")
	}
}

/***************************************************************** token denylist ****************************************************************/

const denylistPrefix = "denylist:"

// BlockToken keeps a signed-out token rejected until it would have expired anyway.
func (s Storage) BlockToken(token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.rds.Set(context.Background(), denylistPrefix+token, 1, ttl).Err()
}

func (s Storage) IsTokenBlocked(token string) bool {

	_, err := s.rds.Get(context.Background(), denylistPrefix+token).Result()
	if err != nil {
		if err != redis.Nil {
			s.lg.Warn().Err(err).Msg("Denylist read failed")
		}
		return false
	}
	return true
}
