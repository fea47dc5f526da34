package property

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"cleanquote/models"
)

const rentCastSource = "rentcast"

// rentCastProperty is the subset of a RentCast property record we read.
type rentCastProperty struct {
	SquareFootage int     `json:"squareFootage"`
	Bedrooms      float64 `json:"bedrooms"`
	Bathrooms     float64 `json:"bathrooms"`
}

// RentCastClient looks properties up in the RentCast property records API.
type RentCastClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewRentCastClient(client *http.Client, baseURL, apiKey string) *RentCastClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &RentCastClient{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

func (c *RentCastClient) Lookup(ctx context.Context, addr models.Address) (*models.PropertyDetails, error) {
	endpoint := fmt.Sprintf("%s/properties?address=%s", c.baseURL, url.QueryEscape(addr.FullAddress()))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("rentcast: %w", ErrLookupTimeout)
		}
		return nil, fmt.Errorf("failed to fetch from rentcast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrPropertyNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rentcast api returned status: %d", resp.StatusCode)
	}

	var records []rentCastProperty
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode rentcast response: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrPropertyNotFound
	}

	first := records[0]
	return &models.PropertyDetails{
		SquareFootage: first.SquareFootage,
		Bedrooms:      first.Bedrooms,
		Bathrooms:     first.Bathrooms,
		Source:        rentCastSource,
	}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}
