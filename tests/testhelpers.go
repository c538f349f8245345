// Package tests holds shared helpers for integration tests that need real
// MongoDB and Redis instances. Containers are started with testcontainers
// and the calling test is skipped in -short mode or when no container
// runtime is reachable.
package tests

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/myarea/app-myarea/internal/config"
	"github.com/myarea/app-myarea/internal/redisclient"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/redis"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const testDatabase = "myarea_test"

// SkipIfShort skips container-backed tests in -short mode
func SkipIfShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
}

// SkipWithoutContainers skips in -short mode and when Docker is unreachable
func SkipWithoutContainers(t *testing.T) {
	t.Helper()
	SkipIfShort(t)
	testcontainers.SkipIfProviderIsNotHealthy(t)
}

// SetupMongo starts a MongoDB container and returns a database handle.
// config.AppConfig is initialised with the test collection names.
func SetupMongo(t *testing.T) *mongo.Database {
	t.Helper()
	SkipWithoutContainers(t)
	ctx := context.Background()

	container, err := mongodb.Run(ctx,
		"mongo:7.0",
		mongodb.WithUsername("root"),
		mongodb.WithPassword("password"),
	)
	require.NoError(t, err, "Failed to start MongoDB container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err, "Failed to get MongoDB connection string")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err, "Failed to connect to MongoDB")
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	require.NoError(t, client.Ping(ctx, nil), "Failed to ping MongoDB")

	initTestConfig()
	config.AppConfig.MongoURI = uri
	config.AppConfig.MongoDatabase = testDatabase

	return client.Database(testDatabase)
}

// SetupRedis starts a Redis container and returns a traced client
func SetupRedis(t *testing.T) *redisclient.Client {
	t.Helper()
	SkipWithoutContainers(t)
	ctx := context.Background()

	container, err := redis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err, "Failed to start Redis container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err, "Failed to get Redis connection string")

	opts, err := goredis.ParseURL(uri)
	require.NoError(t, err, "Failed to parse Redis connection string")

	client := redisclient.NewClient(goredis.NewClient(opts))
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err(), "Failed to ping Redis")

	initTestConfig()
	config.AppConfig.RedisURI = opts.Addr

	return client
}

// CleanupDatabase drops all collections in the test database
func CleanupDatabase(t *testing.T, db *mongo.Database) {
	ctx := context.Background()
	collections, err := db.ListCollectionNames(ctx, map[string]interface{}{})
	require.NoError(t, err, "Failed to list collections")

	for _, collection := range collections {
		err := db.Collection(collection).Drop(ctx)
		require.NoError(t, err, fmt.Sprintf("Failed to drop collection %s", collection))
	}
}

func initTestConfig() {
	if config.AppConfig == nil {
		config.AppConfig = &config.Config{}
	}
	config.AppConfig.Environment = "test"
	config.AppConfig.ProfileCollection = "profiles"
	config.AppConfig.HelpRequestCollection = "help_requests"
	config.AppConfig.HelpOfferCollection = "help_offers"
	config.AppConfig.SessionTTL = time.Hour
	config.AppConfig.OTPResendSeconds = 30
	config.AppConfig.OTPMaxResends = 3
	config.AppConfig.OTPAutoSubmitDelay = 300 * time.Millisecond
}
