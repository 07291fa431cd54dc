package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
)

// RedisKVClient struct holds the Redis client and context
type RedisKVClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisKVClient initializes a new Redis-backed KV client
func NewRedisKVClient(ctx context.Context, client *redis.Client) *RedisKVClient {
	// Test the connection
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	fmt.Println("Connected to Redis")

	return &RedisKVClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis
func (r *RedisKVClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis. A missing key maps to
// ErrKeyNotFound.
func (r *RedisKVClient) Get(key string) (string, error) {
	val, err := r.client.Get(r.ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	return val, err
}

// Del removes a key from Redis.
func (r *RedisKVClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

// Keys lists the keys matching a pattern.
func (r *RedisKVClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

func (r *RedisKVClient) GetContext() context.Context {
	return r.ctx
}

func (r *RedisKVClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}
