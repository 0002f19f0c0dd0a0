package corpus

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"geocompliance-backend/models"
)

const (
	// maxFetchedParagraphs truncates live statute text to its opening paragraphs
	maxFetchedParagraphs = 5

	// fetchTimeout bounds the live fetch so corpus builds never hang on the network
	fetchTimeout = 5 * time.Second

	// DefaultLiveFetchID is the seed regulation refreshed by the default connector
	DefaultLiveFetchID = "eu_dsa_2022"

	// DefaultLiveFetchURL is the published statute text for the default connector
	DefaultLiveFetchURL = "https://eur-lex.europa.eu/legal-content/EN/TXT/HTML/?uri=CELEX:32022R2065"
)

// LiveFetcher optionally refreshes one regulation's description from a
// published statute source at corpus build time. It is a best-effort
// connector: on any failure (network, HTTP status, parse, timeout) the
// embedded seed record is kept and the build proceeds.
type LiveFetcher struct {
	regulationID string
	url          string
	client       *http.Client
}

// NewLiveFetcher creates a connector refreshing the given regulation from url
func NewLiveFetcher(regulationID, url string) *LiveFetcher {
	return &LiveFetcher{
		regulationID: regulationID,
		url:          url,
		client:       &http.Client{Timeout: fetchTimeout},
	}
}

// Refresh returns a copy of records where the connector's regulation carries
// a live-fetched description. Never returns an error: a failed fetch keeps
// the embedded record.
func (f *LiveFetcher) Refresh(ctx context.Context, records []models.Regulation) []models.Regulation {
	out := make([]models.Regulation, len(records))
	copy(out, records)

	for i := range out {
		if out[i].ID != f.regulationID {
			continue
		}
		description, err := f.fetchDescription(ctx)
		if err != nil {
			log.Printf("Warning: live fetch for %s failed, keeping embedded record: %v", f.regulationID, err)
			return out
		}
		out[i].Description = description
		log.Printf("Refreshed %s description from live source (%d chars)", f.regulationID, len(description))
		return out
	}

	log.Printf("Warning: live fetch target %s not present in corpus", f.regulationID)
	return out
}

// fetchDescription downloads the statute page and extracts the first
// paragraphs of body text.
func (f *LiveFetcher) fetchDescription(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch statute source: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("statute source returned status %d", resp.StatusCode)
	}

	paragraphs, err := extractParagraphs(resp.Body, maxFetchedParagraphs)
	if err != nil {
		return "", fmt.Errorf("failed to parse statute HTML: %w", err)
	}
	if len(paragraphs) == 0 {
		return "", fmt.Errorf("no paragraph text found in statute source")
	}

	return strings.Join(paragraphs, " "), nil
}

// extractParagraphs collects the text of the first max non-empty <p> elements
func extractParagraphs(body io.Reader, max int) ([]string, error) {
	doc, err := html.Parse(body)
	if err != nil {
		return nil, err
	}

	var paragraphs []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if len(paragraphs) >= max {
			return
		}
		if n.Type == html.ElementNode && n.Data == "p" {
			text := strings.TrimSpace(nodeText(n))
			if text != "" {
				paragraphs = append(paragraphs, text)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return paragraphs, nil
}

// nodeText concatenates the text content beneath a node
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// Load returns the regulation corpus: the embedded seed records, optionally
// refreshed by the live connector. A malformed seed record is the only fatal
// outcome.
func Load(ctx context.Context, fetcher *LiveFetcher) ([]models.Regulation, error) {
	records := SeedRegulations()
	for _, reg := range records {
		if err := validateRecord(reg); err != nil {
			return nil, fmt.Errorf("embedded corpus is malformed: %w", err)
		}
	}

	if fetcher != nil {
		records = fetcher.Refresh(ctx, records)
	}
	return records, nil
}
