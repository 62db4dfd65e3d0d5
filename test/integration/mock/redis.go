package mock

import (
	"sort"
	"strings"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// Redis pairs an in-process miniredis server with a client connected to it.
type Redis struct {
	Server *miniredis.Miniredis
	Client *redis.Client
}

var (
	redisOnce sync.Once
	shared    *Redis
)

// NewRedis returns the process-wide fake Redis, starting it on first use.
func NewRedis() *Redis {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		shared = &Redis{
			Server: server,
			Client: redis.NewClient(&redis.Options{Addr: server.Addr()}),
		}
	})
	return shared
}

// KeysWithPrefix lists stored keys that start with prefix, sorted.
func (r *Redis) KeysWithPrefix(prefix string) []string {
	var keys []string
	for _, key := range r.Server.Keys() {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// Clear drops every key, including rate limit windows and stale locks.
func (r *Redis) Clear() {
	r.Server.FlushAll()
}
