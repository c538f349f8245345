// Package redisclient wraps go-redis with OpenTelemetry spans. Only the
// commands the session store issues are exposed.
package redisclient

import (
	"context"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const clientName = "app-myarea"

// Client wraps a Redis client with OpenTelemetry tracing
type Client struct {
	cmdable redis.Cmdable
	closer  io.Closer
}

// NewClient creates a new traced Redis client for single Redis instance
func NewClient(client *redis.Client) *Client {
	return &Client{cmdable: client, closer: client}
}

// NewClusterClient creates a new traced Redis client for Redis cluster
func NewClusterClient(client *redis.ClusterClient) *Client {
	return &Client{cmdable: client, closer: client}
}

type command interface {
	Err() error
}

// traced runs fn inside a span named after the operation. redis.Nil is a
// cache miss, not a failure.
func traced[T command](ctx context.Context, operation, key string, fn func(context.Context) T) T {
	start := time.Now()
	attrs := []attribute.KeyValue{
		attribute.String("redis.operation", operation),
		attribute.String("redis.client", clientName),
	}
	if key != "" {
		attrs = append(attrs, attribute.String("redis.key", key))
	}
	ctx, span := otel.Tracer("redis").Start(ctx, "redis."+operation, trace.WithAttributes(attrs...))
	defer func() {
		span.SetAttributes(attribute.Int64("redis.duration_ms", time.Since(start).Milliseconds()))
		span.End()
	}()

	cmd := fn(ctx)
	if err := cmd.Err(); err != nil && err != redis.Nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "success")
	}
	return cmd
}

// Get wraps Redis Get
func (c *Client) Get(ctx context.Context, key string) *redis.StringCmd {
	return traced(ctx, "get", key, func(ctx context.Context) *redis.StringCmd {
		return c.cmdable.Get(ctx, key)
	})
}

// Set wraps Redis Set
func (c *Client) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	return traced(ctx, "set", key, func(ctx context.Context) *redis.StatusCmd {
		return c.cmdable.Set(ctx, key, value, expiration)
	})
}

// Del wraps Redis Del
func (c *Client) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	key := ""
	if len(keys) == 1 {
		key = keys[0]
	}
	return traced(ctx, "del", key, func(ctx context.Context) *redis.IntCmd {
		return c.cmdable.Del(ctx, keys...)
	})
}

// Expire wraps Redis Expire
func (c *Client) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	return traced(ctx, "expire", key, func(ctx context.Context) *redis.BoolCmd {
		return c.cmdable.Expire(ctx, key, expiration)
	})
}

// Exists wraps Redis Exists
func (c *Client) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	return traced(ctx, "exists", "", func(ctx context.Context) *redis.IntCmd {
		return c.cmdable.Exists(ctx, keys...)
	})
}

// Ping wraps Redis Ping
func (c *Client) Ping(ctx context.Context) *redis.StatusCmd {
	return traced(ctx, "ping", "", func(ctx context.Context) *redis.StatusCmd {
		return c.cmdable.Ping(ctx)
	})
}

// Close releases the underlying connection pool
func (c *Client) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}
