// Package property answers "how big is this house" for the quote flow, either
// from a property records API or by reading a public listing page.
package property

import (
	"context"
	"errors"

	"cleanquote/models"

	"go.uber.org/zap"
)

type Lookuper interface {
	Lookup(ctx context.Context, addr models.Address) (*models.PropertyDetails, error)
}

type Scraper interface {
	SquareFootage(ctx context.Context, addr models.Address) (int, error)
}

// PropertyService is what the HTTP layer depends on.
type PropertyService interface {
	LookupProperty(ctx context.Context, addr models.Address) (*models.PropertyDetails, error)
	ScrapeSquareFootage(ctx context.Context, addr models.Address) (int, error)
}

// Service fronts the two property sources with an optional cache. Cache
// failures are logged and never fail a lookup.
type Service struct {
	records Lookuper
	scraper Scraper
	cache   Cache
	logger  *zap.Logger
}

func NewService(records Lookuper, scraper Scraper, cache Cache, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{records: records, scraper: scraper, cache: cache, logger: logger}
}

func (s *Service) LookupProperty(ctx context.Context, addr models.Address) (*models.PropertyDetails, error) {
	key := "records:" + addr.CacheKey()
	if cached := s.fromCache(ctx, key); cached != nil {
		return cached, nil
	}

	details, err := s.records.Lookup(ctx, addr)
	if err != nil {
		return nil, err
	}
	if details.SquareFootage <= 0 {
		return nil, ErrSquareFootageNotFound
	}

	s.toCache(ctx, key, details)
	return details, nil
}

func (s *Service) ScrapeSquareFootage(ctx context.Context, addr models.Address) (int, error) {
	key := "page:" + addr.CacheKey()
	if cached := s.fromCache(ctx, key); cached != nil {
		return cached.SquareFootage, nil
	}

	sqft, err := s.scraper.SquareFootage(ctx, addr)
	if err != nil {
		return 0, err
	}

	s.toCache(ctx, key, &models.PropertyDetails{SquareFootage: sqft, Source: "page"})
	return sqft, nil
}

func (s *Service) fromCache(ctx context.Context, key string) *models.PropertyDetails {
	if s.cache == nil {
		return nil
	}
	details, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("property cache read failed", zap.String("key", key), zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}
	s.logger.Debug("property cache hit", zap.String("key", key))
	return details
}

func (s *Service) toCache(ctx context.Context, key string, details *models.PropertyDetails) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, details); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Warn("property cache write failed", zap.String("key", key), zap.Error(err))
	}
}
