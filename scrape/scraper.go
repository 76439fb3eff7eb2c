package scrape

import (
	"context"

	"github.com/mempirate/scrapetool/document"
)

// Scraper fetches a single URL through a scraping service and returns the
// rendered document.
type Scraper interface {
	Scrape(ctx context.Context, url string) (*document.Document, error)
}
