package services

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/aditya/universe/internal/app/models"
	"github.com/aditya/universe/internal/app/repositories"
	"github.com/aditya/universe/internal/pkg/apperrors"
)

// ActivityService assembles one student's posting history across every
// post collection.
type ActivityService interface {
	UserActivity(ctx context.Context, userID string) (map[string][]models.Document, error)
}

// activityServiceImpl implements ActivityService
type activityServiceImpl struct {
	stores map[string]repositories.DocumentStore
	logger zerolog.Logger
}

// NewActivityService creates a new ActivityService over the per-collection stores
func NewActivityService(stores map[string]repositories.DocumentStore, logger zerolog.Logger) ActivityService {
	return &activityServiceImpl{
		stores: stores,
		logger: logger,
	}
}

// UserActivity issues one owner query per collection concurrently and joins
// on all of them. Every collection key is always present in the result, with
// an empty list when the student posted nothing there. A single failed query
// fails the whole operation; there is no partial result.
func (s *activityServiceImpl) UserActivity(ctx context.Context, userID string) (map[string][]models.Document, error) {
	colls := models.Collections()
	results := make([][]models.Document, len(colls))

	group, ctx := errgroup.WithContext(ctx)
	for i, coll := range colls {
		store, ok := s.stores[coll.Name]
		if !ok {
			continue
		}
		i, store := i, store
		group.Go(func() error {
			docs, err := store.FindByOwner(ctx, userID)
			if err != nil {
				return err
			}
			results[i] = docs
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		s.logger.Error().Err(err).Str("userId", userID).Msg("User activity fan-out failed")
		return nil, apperrors.NewPersistenceError("Failed to fetch user activity")
	}

	activity := make(map[string][]models.Document, len(colls))
	for i, coll := range colls {
		if results[i] == nil {
			results[i] = []models.Document{}
		}
		activity[coll.Name] = results[i]
	}
	return activity, nil
}
