package property

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cleanquote/models"

	"golang.org/x/net/html"
)

const maxPageBytes = 5 << 20

// PageScraper pulls a listing search page and reads the square footage out of
// its visible text.
type PageScraper struct {
	client    *http.Client
	searchURL string
	userAgent string
	timeout   time.Duration
}

// NewPageScraper builds a scraper. searchURL must contain a single %s which
// receives the query-escaped address.
func NewPageScraper(client *http.Client, searchURL, userAgent string, timeout time.Duration) *PageScraper {
	if client == nil {
		client = http.DefaultClient
	}
	return &PageScraper{client: client, searchURL: searchURL, userAgent: userAgent, timeout: timeout}
}

func (s *PageScraper) SquareFootage(ctx context.Context, addr models.Address) (int, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	text, err := s.pageText(ctx, fmt.Sprintf(s.searchURL, url.QueryEscape(addr.FullAddress())))
	if err != nil {
		if isTimeout(err) || ctx.Err() == context.DeadlineExceeded {
			return 0, fmt.Errorf("scraper: %w", ErrLookupTimeout)
		}
		return 0, err
	}

	sqft, ok := ExtractSquareFootage(text)
	if !ok {
		return 0, ErrSquareFootageNotFound
	}
	return sqft, nil
}

func (s *PageScraper) pageText(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch listing page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrPropertyNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("listing page returned status: %d", resp.StatusCode)
	}

	return VisibleText(io.LimitReader(resp.Body, maxPageBytes))
}

// VisibleText renders the human-visible text of an HTML document, one text
// node per line. Script, style and template contents are skipped.
func VisibleText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse listing page: %w", err)
	}

	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "template", "head":
				return
			}
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				sb.WriteString(t)
				sb.WriteByte('\n')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return sb.String(), nil
}
