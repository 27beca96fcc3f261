package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/NextMind-AI/shopbot-go/conversation"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const keyPrefix = "conversation:"

// Client is a conversation.Store backed by Redis. Each user's state is a
// JSON value whose key expiry carries the state TTL.
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewClient(addr, password string, db int, ttl time.Duration) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	client := NewFromRedis(rdb, ttl)

	if err := client.Ping(context.Background()); err != nil {
		log.Error().Err(err).
			Str("addr", addr).
			Int("db", db).
			Msg("Redis connection failed")
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	log.Info().
		Str("addr", addr).
		Int("db", db).
		Dur("ttl", ttl).
		Msg("Redis connected successfully")

	return client, nil
}

// NewFromRedis wraps an existing go-redis client.
func NewFromRedis(rdb *redis.Client, ttl time.Duration) *Client {
	return &Client{rdb: rdb, ttl: ttl}
}

func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

func (c *Client) Load(ctx context.Context, userID string) conversation.State {
	raw, err := c.rdb.Get(ctx, key(userID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("user_id", userID).Msg("Error loading conversation state")
		}
		return conversation.State{}
	}

	var state conversation.State
	if err := json.Unmarshal(raw, &state); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("Discarding unreadable conversation state")
		return conversation.State{}
	}
	return state
}

func (c *Client) Save(ctx context.Context, userID string, state conversation.State) error {
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return err
	}

	if err := c.rdb.Set(ctx, key(userID), stateJSON, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save conversation state: %w", err)
	}
	return nil
}

func key(userID string) string {
	return keyPrefix + userID
}
