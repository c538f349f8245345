package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/myarea/app-myarea/internal/logging"
	"github.com/myarea/app-myarea/internal/models"
	"github.com/myarea/app-myarea/internal/observability"
	"github.com/myarea/app-myarea/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const queryTimeout = 10 * time.Second

// ErrProfileNotFound is returned when no profile is registered for an identifier
var ErrProfileNotFound = errors.New("profile not found")

// ProfileStore keeps registered profiles
type ProfileStore interface {
	SubmitProfile(ctx context.Context, identifier string, lang models.Language, profile models.UserProfile) error
	GetProfile(ctx context.Context, identifier string) (*models.ProfileRecord, error)
	SetStatus(ctx context.Context, identifier, status string) error
}

// MongoProfileStore keeps one document per identifier
type MongoProfileStore struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewMongoProfileStore creates a store on collection
func NewMongoProfileStore(db *mongo.Database, collection string) *MongoProfileStore {
	return &MongoProfileStore{
		collection: db.Collection(collection),
		logger:     logging.Logger.Named("profile_store"),
	}
}

// SubmitProfile upserts the profile of identifier. A resubmission replaces
// the profile and resets the status to pending.
func (s *MongoProfileStore) SubmitProfile(ctx context.Context, identifier string, lang models.Language, profile models.UserProfile) error {
	ctx, span, cleanup := utils.TraceDatabaseOperation(ctx, "upsert", s.collection.Name())
	defer cleanup()

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	now := time.Now().UTC()
	id := utils.NormalizeIdentifier(identifier)
	update := bson.M{
		"$set": bson.M{
			"language":   lang,
			"profile":    profile,
			"status":     models.ProfileStatusPending,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"identifier":   id,
			"submitted_at": now,
		},
	}

	_, err := s.collection.UpdateOne(ctx, bson.M{"identifier": id}, update, options.Update().SetUpsert(true))
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("profile_upsert", "error").Inc()
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"collection": s.collection.Name()})
		s.logger.Error("failed to submit profile",
			zap.String("identifier", observability.MaskIdentifier(id)),
			zap.Error(err))
		return fmt.Errorf("submit profile: %w", err)
	}

	observability.DatabaseOperations.WithLabelValues("profile_upsert", "success").Inc()
	s.logger.Info("profile submitted", zap.String("identifier", observability.MaskIdentifier(id)))
	return nil
}

// GetProfile loads the record of identifier
func (s *MongoProfileStore) GetProfile(ctx context.Context, identifier string) (*models.ProfileRecord, error) {
	ctx, _, cleanup := utils.TraceDatabaseOperation(ctx, "find_one", s.collection.Name())
	defer cleanup()

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var record models.ProfileRecord
	err := s.collection.FindOne(ctx, bson.M{"identifier": utils.NormalizeIdentifier(identifier)}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("profile_find", "error").Inc()
		return nil, fmt.Errorf("get profile: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("profile_find", "success").Inc()
	return &record, nil
}

// SetStatus updates the verification status of identifier
func (s *MongoProfileStore) SetStatus(ctx context.Context, identifier, status string) error {
	ctx, _, cleanup := utils.TraceDatabaseOperation(ctx, "update", s.collection.Name())
	defer cleanup()

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := s.collection.UpdateOne(ctx,
		bson.M{"identifier": utils.NormalizeIdentifier(identifier)},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("profile_status", "error").Inc()
		return fmt.Errorf("set profile status: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrProfileNotFound
	}
	observability.DatabaseOperations.WithLabelValues("profile_status", "success").Inc()
	return nil
}

// MemoryProfileStore keeps profiles in process memory
type MemoryProfileStore struct {
	mu      sync.RWMutex
	records map[string]models.ProfileRecord
}

// NewMemoryProfileStore creates an empty store
func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{records: make(map[string]models.ProfileRecord)}
}

// SubmitProfile stores the profile of identifier
func (s *MemoryProfileStore) SubmitProfile(_ context.Context, identifier string, lang models.Language, profile models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	id := utils.NormalizeIdentifier(identifier)
	record, ok := s.records[id]
	if !ok {
		record = models.ProfileRecord{Identifier: id, SubmittedAt: now}
	}
	record.Language = lang
	record.Profile = profile
	record.Status = models.ProfileStatusPending
	record.UpdatedAt = now
	s.records[id] = record
	return nil
}

// GetProfile returns the record of identifier
func (s *MemoryProfileStore) GetProfile(_ context.Context, identifier string) (*models.ProfileRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[utils.NormalizeIdentifier(identifier)]
	if !ok {
		return nil, ErrProfileNotFound
	}
	return &record, nil
}

// SetStatus updates the verification status of identifier
func (s *MemoryProfileStore) SetStatus(_ context.Context, identifier, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := utils.NormalizeIdentifier(identifier)
	record, ok := s.records[id]
	if !ok {
		return ErrProfileNotFound
	}
	record.Status = status
	record.UpdatedAt = time.Now().UTC()
	s.records[id] = record
	return nil
}
