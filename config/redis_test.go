package config

import (
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestConnectRedisSkippedInTestEnv(t *testing.T) {
	t.Setenv("APPENV", "test")

	client, err := ConnectRedis()
	assert.NoError(t, err)
	assert.Nil(t, client)
}

func TestSetRedisClientForTesting(t *testing.T) {
	prev := GetRedisClient()
	t.Cleanup(func() { SetRedisClientForTesting(prev) })

	fake := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	SetRedisClientForTesting(fake)
	assert.Same(t, fake, GetRedisClient())

	SetRedisClientForTesting(nil)
	assert.Nil(t, GetRedisClient())
}
