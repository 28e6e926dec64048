package feed

import (
	"time"
)

// FetchedFeed is the normalized in-memory representation of a fetched
// feed document. It is transient: validation discards it, and a future
// polling collaborator consumes it without persisting it here.
type FetchedFeed struct {
	Title       string
	Link        string
	Description string
	Items       []FetchedFeedItem
}

// FetchedFeedItem is a single normalized feed entry. Title, Description,
// Link, Author and GUID are optional (empty string means absent);
// PublicationDate is mandatory and parsed from the item's RFC2822 date
// string.
type FetchedFeedItem struct {
	Title           string
	Description     string
	Link            string
	Author          string
	GUID            string
	PublicationDate time.Time
}
