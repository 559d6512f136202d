package services

import (
	"context"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/aditya/universe/internal/app/models"
	"github.com/aditya/universe/internal/app/repositories"
	"github.com/aditya/universe/internal/pkg/apperrors"
)

// SearchService runs the aggregate search across every searchable collection
type SearchService interface {
	Search(ctx context.Context, query string) (map[string][]models.Document, error)
}

// searchServiceImpl implements SearchService
type searchServiceImpl struct {
	stores map[string]repositories.DocumentStore
	logger zerolog.Logger
}

// NewSearchService creates a new SearchService over the per-collection stores
func NewSearchService(stores map[string]repositories.DocumentStore, logger zerolog.Logger) SearchService {
	return &searchServiceImpl{
		stores: stores,
		logger: logger,
	}
}

// Search matches the query as a case-insensitive substring across each
// searchable collection's text fields, concurrently, all-or-nothing. The
// query is untrusted input: it is escaped before being used as a pattern,
// so special characters match literally.
func (s *searchServiceImpl) Search(ctx context.Context, query string) (map[string][]models.Document, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperrors.NewMissingParameterError("Search query required")
	}

	pattern := regexp.QuoteMeta(query)

	var searchable []models.Collection
	for _, coll := range models.Collections() {
		if len(coll.SearchFields) > 0 {
			searchable = append(searchable, coll)
		}
	}

	results := make([][]models.Document, len(searchable))
	group, ctx := errgroup.WithContext(ctx)
	for i, coll := range searchable {
		store, ok := s.stores[coll.Name]
		if !ok {
			continue
		}
		i, store := i, store
		group.Go(func() error {
			docs, err := store.Match(ctx, pattern)
			if err != nil {
				return err
			}
			results[i] = docs
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		s.logger.Error().Err(err).Str("query", query).Msg("Search fan-out failed")
		return nil, apperrors.NewPersistenceError("Search failed")
	}

	matches := make(map[string][]models.Document, len(searchable))
	for i, coll := range searchable {
		if results[i] == nil {
			results[i] = []models.Document{}
		}
		matches[coll.Name] = results[i]
	}
	return matches, nil
}
