package property

import (
	"context"
	"errors"
	"testing"

	"cleanquote/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLookuper struct {
	calls   int
	details *models.PropertyDetails
	err     error
}

func (f *fakeLookuper) Lookup(ctx context.Context, addr models.Address) (*models.PropertyDetails, error) {
	f.calls++
	return f.details, f.err
}

type fakeScraper struct {
	calls int
	sqft  int
	err   error
}

func (f *fakeScraper) SquareFootage(ctx context.Context, addr models.Address) (int, error) {
	f.calls++
	return f.sqft, f.err
}

type memCache struct {
	data   map[string]*models.PropertyDetails
	getErr error
	setErr error
}

func newMemCache() *memCache {
	return &memCache{data: map[string]*models.PropertyDetails{}}
}

func (c *memCache) Get(ctx context.Context, key string) (*models.PropertyDetails, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	d, ok := c.data[key]
	return d, ok, nil
}

func (c *memCache) Set(ctx context.Context, key string, details *models.PropertyDetails) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.data[key] = details
	return nil
}

func TestService_LookupProperty_CachesByNormalisedAddress(t *testing.T) {
	records := &fakeLookuper{details: &models.PropertyDetails{SquareFootage: 1500, Bedrooms: 3}}
	cache := newMemCache()
	svc := NewService(records, nil, cache, zap.NewNop())

	got, err := svc.LookupProperty(context.Background(), testAddress)
	require.NoError(t, err)
	assert.Equal(t, 1500, got.SquareFootage)

	shouty := models.Address{Street: "123  MAIN st", City: "seattle", State: "wa", Zip: "98101"}
	got, err = svc.LookupProperty(context.Background(), shouty)
	require.NoError(t, err)
	assert.Equal(t, 1500, got.SquareFootage)
	assert.Equal(t, 1, records.calls)
}

func TestService_LookupProperty_Errors(t *testing.T) {
	svc := NewService(&fakeLookuper{err: ErrPropertyNotFound}, nil, nil, nil)
	_, err := svc.LookupProperty(context.Background(), testAddress)
	assert.ErrorIs(t, err, ErrPropertyNotFound)

	svc = NewService(&fakeLookuper{details: &models.PropertyDetails{Bedrooms: 2}}, nil, nil, nil)
	_, err = svc.LookupProperty(context.Background(), testAddress)
	assert.ErrorIs(t, err, ErrSquareFootageNotFound)
}

func TestService_CacheFailuresAreBypassed(t *testing.T) {
	records := &fakeLookuper{details: &models.PropertyDetails{SquareFootage: 1200}}
	cache := newMemCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	svc := NewService(records, nil, cache, zap.NewNop())

	got, err := svc.LookupProperty(context.Background(), testAddress)
	require.NoError(t, err)
	assert.Equal(t, 1200, got.SquareFootage)
}

func TestService_ScrapeSquareFootage(t *testing.T) {
	scraper := &fakeScraper{sqft: 2100}
	cache := newMemCache()
	svc := NewService(nil, scraper, cache, zap.NewNop())

	for i := 0; i < 2; i++ {
		got, err := svc.ScrapeSquareFootage(context.Background(), testAddress)
		require.NoError(t, err)
		assert.Equal(t, 2100, got)
	}
	assert.Equal(t, 1, scraper.calls)

	// Scraped and records results live under different keys.
	_, hit, _ := cache.Get(context.Background(), "records:"+testAddress.CacheKey())
	assert.False(t, hit)
}

func TestService_ScrapeSquareFootage_Miss(t *testing.T) {
	svc := NewService(nil, &fakeScraper{err: ErrSquareFootageNotFound}, newMemCache(), nil)
	_, err := svc.ScrapeSquareFootage(context.Background(), testAddress)
	assert.ErrorIs(t, err, ErrSquareFootageNotFound)
}
