package property

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingPage = `<html><head><title>2,000 sq ft title</title><script>var sqft = "9 sq ft";</script></head>
<body><div class="stats"><span>3 Beds</span><span>2 Baths</span><span>1,850</span><span>Sq Ft</span></div>
<style>.x{content:"40000 sq ft"}</style></body></html>`

func TestPageScraper_SquareFootage(t *testing.T) {
	var gotUA, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotQuery = r.URL.Query().Get("q")
		_, _ = w.Write([]byte(listingPage))
	}))
	defer srv.Close()

	s := NewPageScraper(srv.Client(), srv.URL+"/search?q=%s", "test-agent", time.Second)
	got, err := s.SquareFootage(context.Background(), testAddress)

	require.NoError(t, err)
	assert.Equal(t, 1850, got)
	assert.Equal(t, "test-agent", gotUA)
	assert.Equal(t, testAddress.FullAddress(), gotQuery)
}

func TestPageScraper_NotFoundOnPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>Lot 60000 sq ft, shed 80 sq ft</p></body></html>`))
	}))
	defer srv.Close()

	_, err := NewPageScraper(srv.Client(), srv.URL+"/?q=%s", "", time.Second).SquareFootage(context.Background(), testAddress)
	assert.ErrorIs(t, err, ErrSquareFootageNotFound)
}

func TestPageScraper_UpstreamErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.RawQuery, "missing") {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	s := NewPageScraper(srv.Client(), srv.URL+"/?q=missing%s", "", time.Second)
	_, err := s.SquareFootage(context.Background(), testAddress)
	assert.ErrorIs(t, err, ErrPropertyNotFound)

	s = NewPageScraper(srv.Client(), srv.URL+"/?q=%s", "", time.Second)
	_, err = s.SquareFootage(context.Background(), testAddress)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPropertyNotFound)
	assert.Contains(t, err.Error(), "403")
}

func TestPageScraper_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	_, err := NewPageScraper(srv.Client(), srv.URL+"/?q=%s", "", 50*time.Millisecond).SquareFootage(context.Background(), testAddress)
	assert.ErrorIs(t, err, ErrLookupTimeout)
}

func TestVisibleText(t *testing.T) {
	text, err := VisibleText(strings.NewReader(listingPage))
	require.NoError(t, err)

	assert.Contains(t, text, "1,850\nSq Ft")
	assert.NotContains(t, text, "var sqft")
	assert.NotContains(t, text, "40000")
	assert.NotContains(t, text, "title")
}
