package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/myarea/app-myarea/internal/logging"
	"github.com/myarea/app-myarea/internal/redisclient"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
	"go.uber.org/zap"
)

var (
	// MongoDB client
	MongoDB *mongo.Database
	// Redis client
	Redis *redisclient.Client
)

// InitMongoDB initializes the MongoDB connection
func InitMongoDB() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(AppConfig.MongoURI).
		SetMonitor(otelmongo.NewMonitor()).
		SetMaxPoolSize(50).
		SetMinPoolSize(5).
		SetMaxConnIdleTime(5 * time.Minute).
		SetRetryWrites(true).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping mongodb: %w", err)
	}

	MongoDB = client.Database(AppConfig.MongoDatabase)

	if err := EnsureIndexes(context.Background(), MongoDB); err != nil {
		logging.Logger.Error("failed to ensure indexes on startup", zap.Error(err))
	}

	logging.Logger.Info("connected to MongoDB",
		zap.String("uri", maskMongoURI(AppConfig.MongoURI)),
		zap.String("database", AppConfig.MongoDatabase),
	)
	return nil
}

// InitRedis initializes the Redis connection. A failed ping is logged and
// the client is kept; session snapshots degrade to the in-process cache.
func InitRedis() {
	redisClient := redis.NewClient(&redis.Options{
		Addr:         AppConfig.RedisURI,
		Password:     AppConfig.RedisPassword,
		DB:           AppConfig.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	Redis = redisclient.NewClient(redisClient)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Redis.Ping(ctx).Err(); err != nil {
		logging.Logger.Error("failed to connect to Redis",
			zap.String("uri", AppConfig.RedisURI),
			zap.Error(err))
		return
	}

	logging.Logger.Info("connected to Redis",
		zap.String("uri", AppConfig.RedisURI))
}

// Disconnect closes the database connections
func Disconnect(ctx context.Context) {
	if MongoDB != nil {
		if err := MongoDB.Client().Disconnect(ctx); err != nil {
			logging.Logger.Error("failed to disconnect from MongoDB", zap.Error(err))
		}
	}
	if Redis != nil {
		if err := Redis.Close(); err != nil {
			logging.Logger.Error("failed to close Redis client", zap.Error(err))
		}
	}
}

// maskMongoURI masks the credentials in a MongoDB URI
func maskMongoURI(uri string) string {
	at := strings.LastIndex(uri, "@")
	if at < 0 {
		return uri
	}
	return "mongodb://****:****@" + uri[at+1:]
}

// collectionIndexes lists the indexes each collection needs
func collectionIndexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		AppConfig.ProfileCollection: {
			{
				Keys:    bson.D{{Key: "identifier", Value: 1}},
				Options: options.Index().SetName("identifier_1").SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "status", Value: 1}},
				Options: options.Index().SetName("status_1"),
			},
		},
		AppConfig.HelpRequestCollection: {
			{
				Keys:    bson.D{{Key: "identifier", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("identifier_1_created_at_-1"),
			},
		},
		AppConfig.HelpOfferCollection: {
			{
				Keys:    bson.D{{Key: "identifier", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("identifier_1_created_at_-1"),
			},
			{
				Keys:    bson.D{{Key: "category", Value: 1}},
				Options: options.Index().SetName("category_1"),
			},
		},
	}
}

// EnsureIndexes creates required indexes if they don't exist
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	logger := logging.Logger.Named("database")
	logger.Info("ensuring required indexes exist")

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for name, indexes := range collectionIndexes() {
		if err := ensureCollectionIndexes(ctx, logger, db.Collection(name), indexes); err != nil {
			return err
		}
	}

	logger.Info("all required indexes verified")
	return nil
}

func ensureCollectionIndexes(ctx context.Context, logger *zap.Logger, collection *mongo.Collection, indexes []mongo.IndexModel) error {
	cursor, err := collection.Indexes().List(ctx)
	if err != nil {
		logger.Error("failed to list indexes", zap.String("collection", collection.Name()), zap.Error(err))
		return err
	}
	defer cursor.Close(ctx)

	existing := make(map[string]bool)
	for cursor.Next(ctx) {
		var index bson.M
		if err := cursor.Decode(&index); err != nil {
			continue
		}
		if name, ok := index["name"].(string); ok {
			existing[name] = true
		}
	}

	created := 0
	for _, model := range indexes {
		name := *model.Options.Name
		if existing[name] {
			continue
		}
		if _, err := collection.Indexes().CreateOne(ctx, model); err != nil {
			// another instance may have created it first
			if mongo.IsDuplicateKeyError(err) {
				continue
			}
			logger.Error("failed to create index",
				zap.String("collection", collection.Name()),
				zap.String("index", name),
				zap.Error(err))
			return err
		}
		created++
	}

	if created > 0 {
		logger.Info("created collection indexes",
			zap.String("collection", collection.Name()),
			zap.Int("count", created))
	} else {
		logger.Debug("collection indexes already exist", zap.String("collection", collection.Name()))
	}
	return nil
}
