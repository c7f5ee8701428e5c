package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type CompletionCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

type redisCompletionCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCompletionCache(ctx context.Context, redisURL string, ttl time.Duration) (CompletionCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %w", err)
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisCompletionCache{client: client, ttl: ttl}, nil
}

func (r *redisCompletionCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read cached completion: %w", err)
	}
	return value, true, nil
}

func (r *redisCompletionCache) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, key, value, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache completion: %w", err)
	}
	return nil
}

func (r *redisCompletionCache) Close() error {
	return r.client.Close()
}

type cachedLLM struct {
	next  LLMService
	cache CompletionCache
}

// NewCachedLLM serves identical prompts from cache. Cache failures only cost
// a model call.
func NewCachedLLM(next LLMService, cache CompletionCache) LLMService {
	return &cachedLLM{next: next, cache: cache}
}

func (c *cachedLLM) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	key := completionCacheKey(c.next.ModelName(), systemPrompt, userPrompt)

	cached, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		log.Printf("⚠️ Completion cache lookup failed: %v\n", err)
	} else if ok {
		log.Println("♻️ Serving completion from cache")
		return cached, nil
	}

	text, err := c.next.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		return "", err
	}

	if text != EmptyCompletionText {
		if err := c.cache.Set(ctx, key, text); err != nil {
			log.Printf("⚠️ Failed to store completion in cache: %v\n", err)
		}
	}

	return text, nil
}

func (c *cachedLLM) ModelName() string {
	return c.next.ModelName()
}

func completionCacheKey(model, systemPrompt, userPrompt string) string {
	h := sha256.New()
	h.Write([]byte(model))
	h.Write([]byte{0})
	h.Write([]byte(systemPrompt))
	h.Write([]byte{0})
	h.Write([]byte(userPrompt))
	return "cvtailor:completion:" + hex.EncodeToString(h.Sum(nil))
}
