package services

import (
	"context"
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

// HelpStore keeps need-help requests and offers of help
type HelpStore interface {
	SaveHelp(ctx context.Context, submission models.HelpSubmission) error
	ListHelp(ctx context.Context, kind, identifier string) ([]models.HelpSubmission, error)
}

// MongoHelpStore writes needs and offers to separate collections
type MongoHelpStore struct {
	requests *mongo.Collection
	offers   *mongo.Collection
	logger   *zap.Logger
}

// NewMongoHelpStore creates a store on the two collections
func NewMongoHelpStore(db *mongo.Database, requestCollection, offerCollection string) *MongoHelpStore {
	return &MongoHelpStore{
		requests: db.Collection(requestCollection),
		offers:   db.Collection(offerCollection),
		logger:   logging.Logger.Named("help_store"),
	}
}

func (s *MongoHelpStore) collectionFor(kind string) (*mongo.Collection, error) {
	switch kind {
	case models.HelpKindNeed:
		return s.requests, nil
	case models.HelpKindOffer:
		return s.offers, nil
	}
	return nil, fmt.Errorf("unknown help kind %q", kind)
}

// SaveHelp inserts submission, assigning an id and timestamp when missing
func (s *MongoHelpStore) SaveHelp(ctx context.Context, submission models.HelpSubmission) error {
	collection, err := s.collectionFor(submission.Kind)
	if err != nil {
		return err
	}
	prepareSubmission(&submission)

	ctx, span, cleanup := utils.TraceDatabaseOperation(ctx, "insert", collection.Name())
	defer cleanup()

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := collection.InsertOne(ctx, submission); err != nil {
		observability.DatabaseOperations.WithLabelValues("help_insert", "error").Inc()
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"kind": submission.Kind})
		s.logger.Error("failed to save help submission", zap.String("kind", submission.Kind), zap.Error(err))
		return fmt.Errorf("save help submission: %w", err)
	}

	observability.DatabaseOperations.WithLabelValues("help_insert", "success").Inc()
	return nil
}

// ListHelp returns the submissions of identifier, newest first
func (s *MongoHelpStore) ListHelp(ctx context.Context, kind, identifier string) ([]models.HelpSubmission, error) {
	collection, err := s.collectionFor(kind)
	if err != nil {
		return nil, err
	}

	ctx, _, cleanup := utils.TraceDatabaseOperation(ctx, "find", collection.Name())
	defer cleanup()

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := collection.Find(ctx,
		bson.M{"identifier": utils.NormalizeIdentifier(identifier)},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("list help submissions: %w", err)
	}
	defer cursor.Close(ctx)

	submissions := []models.HelpSubmission{}
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, fmt.Errorf("decode help submissions: %w", err)
	}
	return submissions, nil
}

// MemoryHelpStore keeps submissions in process memory
type MemoryHelpStore struct {
	mu          sync.RWMutex
	submissions []models.HelpSubmission
}

// NewMemoryHelpStore creates an empty store
func NewMemoryHelpStore() *MemoryHelpStore {
	return &MemoryHelpStore{}
}

// SaveHelp appends submission
func (s *MemoryHelpStore) SaveHelp(_ context.Context, submission models.HelpSubmission) error {
	prepareSubmission(&submission)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submissions = append(s.submissions, submission)
	return nil
}

// ListHelp returns the submissions of identifier, newest first
func (s *MemoryHelpStore) ListHelp(_ context.Context, kind, identifier string) ([]models.HelpSubmission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id := utils.NormalizeIdentifier(identifier)
	result := []models.HelpSubmission{}
	for i := len(s.submissions) - 1; i >= 0; i-- {
		sub := s.submissions[i]
		if sub.Kind == kind && sub.Identifier == id {
			result = append(result, sub)
		}
	}
	return result, nil
}

func prepareSubmission(submission *models.HelpSubmission) {
	if submission.ID == "" {
		submission.ID = utils.GenerateUUID()
	}
	if submission.CreatedAt.IsZero() {
		submission.CreatedAt = time.Now().UTC()
	}
	submission.Identifier = utils.NormalizeIdentifier(submission.Identifier)
}
