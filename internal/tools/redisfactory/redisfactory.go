package redisfactory

import (
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// If one connection needs to be broken up new function should be introduced
// example: GroupingFlightsClient()

// todo: clients can to be created on-demand, but got to figure out how to fail fast if URIs are missing

type Factory struct {
	groupingCache  *redis.Client
	responsesCache *redis.Client
}

func New() *Factory {
	opt, err := redis.ParseURL(os.Getenv("GROUPING_REDIS_URI"))
	if err != nil {
		panic(err)
	}

	opt.DialTimeout = 4 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	groupingCache := redis.NewClient(opt)

	opt, err = redis.ParseURL(os.Getenv("RESPONSES_CACHE_REDIS_URI"))
	if err != nil {
		panic(err)
	}

	opt.DialTimeout = 4 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	responsesCache := redis.NewClient(opt)

	return &Factory{
		groupingCache:  groupingCache,
		responsesCache: responsesCache,
	}
}

func (f *Factory) GroupingClient() *redis.Client {
	return f.groupingCache
}

func (f *Factory) ResponsesCacheClient() *redis.Client {
	return f.responsesCache
}
