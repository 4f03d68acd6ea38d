package index

import (
	"context"
	"time"

	"search-sync/core/webflow"
	"search-sync/feature/index/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Reference collection field projections.
const (
	refNameField = "name"
)

// Service assembles the full search index document.
type Service struct {
	client webflow.Client
	cfg    webflow.Config
	logger *zap.Logger
}

// NewService creates a new index assembler service.
func NewService(client webflow.Client, cfg webflow.Config, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// BuildDocument runs one full assembly: the four reference lookups are
// fetched concurrently (they are independent), then each content collection
// is fetched and normalized in its fixed configured order. Any fetch error
// aborts the whole run with no document produced; the system favors
// all-or-nothing consistency of the index over partial freshness.
func (s *Service) BuildDocument(ctx context.Context) (*models.Document, error) {
	lookups, err := s.fetchLookups(ctx)
	if err != nil {
		return nil, err
	}

	var items []models.Item
	for _, col := range ContentCollections(s.cfg) {
		s.logger.Info("Fetching collection", zap.String("collection", col.Key))

		raw, err := s.client.FetchAll(ctx, col.ID)
		if err != nil {
			return nil, err
		}

		for _, item := range raw {
			items = append(items, Normalize(item, col, *lookups))
		}
		s.logger.Info("Collection fetched",
			zap.String("collection", col.Key),
			zap.Int("items", len(raw)),
		)
	}

	doc := models.NewDocument(items, time.Now())
	s.logger.Info("Index assembled", zap.Int("total_items", doc.TotalItems))
	return doc, nil
}

// fetchLookups builds the four reference lookups. They share no state and
// write to disjoint maps, so they run concurrently with first-error abort.
func (s *Service) fetchLookups(ctx context.Context) (*Lookups, error) {
	var lookups Lookups

	g, gctx := errgroup.WithContext(ctx)

	fetch := func(name, collectionID string, dst *Lookup, extraFields ...string) {
		g.Go(func() error {
			s.logger.Info("Building lookup", zap.String("lookup", name))
			lookup, err := BuildLookup(gctx, s.client, collectionID, refNameField, extraFields...)
			if err != nil {
				return err
			}
			*dst = lookup
			return nil
		})
	}

	fetch("resource-types", s.cfg.ResourceTypeCollectionID, &lookups.ResourceTypes)
	fetch("authors", s.cfg.AuthorCollectionID, &lookups.Authors, authorPhotoField)
	fetch("use-cases", s.cfg.UseCaseCollectionID, &lookups.UseCases)
	fetch("industries", s.cfg.IndustryCollectionID, &lookups.Industries)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &lookups, nil
}
