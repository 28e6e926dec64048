package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// rfc2822Layouts covers the date formats RFC2822 permits in feed documents,
// with and without the zone abbreviation.
var rfc2822Layouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 MST",
}

// Normalizer converts a raw parsed channel into the internal FetchedFeed
// model.
type Normalizer struct{}

// NewNormalizer creates a new normalizer
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Run normalizes a raw channel. Feed-level title, link and description are
// copied verbatim and item order is preserved. Every item must carry a
// parseable RFC2822 publication date; the first item without one rejects
// the whole feed.
func (n *Normalizer) Run(raw *gofeed.Feed) (*FetchedFeed, error) {
	items := make([]FetchedFeedItem, 0, len(raw.Items))
	for i, item := range raw.Items {
		publishedAt, err := parseRFC2822(item.Published)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}

		items = append(items, FetchedFeedItem{
			Title:           item.Title,
			Description:     item.Description,
			Link:            item.Link,
			Author:          itemAuthor(item),
			GUID:            item.GUID,
			PublicationDate: publishedAt,
		})
	}

	return &FetchedFeed{
		Title:       raw.Title,
		Link:        raw.Link,
		Description: raw.Description,
		Items:       items,
	}, nil
}

// parseRFC2822 parses a feed item's publication date string into a
// timezone-aware instant.
func parseRFC2822(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("missing publication date")
	}

	for _, layout := range rfc2822Layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid publication date %q", value)
}

func itemAuthor(item *gofeed.Item) string {
	if item.Author == nil {
		return ""
	}
	if item.Author.Name != "" {
		return item.Author.Name
	}
	return item.Author.Email
}
